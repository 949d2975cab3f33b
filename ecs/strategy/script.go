package strategy

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"
)

// ScriptSource serves integer draws from a tengo script. The script sees
// __bound, __draw and __debug and sets pick; a pick outside [0, __bound)
// hands that draw to the fallback source. Float draws always come from the
// fallback.
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
	fallback Source
	draws    int

	failOnce sync.Once
	failed   bool
}

func NewScriptSource(name string, src []byte, fallback Source, debug bool) (*ScriptSource, error) {
	if fallback == nil {
		return nil, fmt.Errorf("strategy: script %s: nil fallback source", name)
	}

	script := tengo.NewScript(src)
	_ = script.Add("__bound", 0)
	_ = script.Add("__draw", 0)
	_ = script.Add("__debug", debug)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("strategy: compile script %s: %w", name, err)
	}
	// Globals only exist after a run.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("strategy: run script %s: %w", name, err)
	}
	if !compiled.IsDefined("pick") {
		return nil, fmt.Errorf("strategy: script %s does not define pick", name)
	}

	return &ScriptSource{name: name, compiled: compiled, fallback: fallback}, nil
}

func (s *ScriptSource) IntN(n int) int {
	draw := s.draws
	s.draws++
	if pick, ok := s.pick(n, draw); ok {
		return pick
	}
	return s.fallback.IntN(n)
}

func (s *ScriptSource) Float64() float64 {
	return s.fallback.Float64()
}

func (s *ScriptSource) pick(n, draw int) (int, bool) {
	if s.failed {
		return 0, false
	}
	if err := s.run(n, draw); err != nil {
		s.fail(err)
		return 0, false
	}

	var pick int
	switch v := s.compiled.Get("pick").Value().(type) {
	case int64:
		pick = int(v)
	case int:
		pick = v
	default:
		s.fail(fmt.Errorf("pick is %T, want int", v))
		return 0, false
	}
	if pick < 0 || pick >= n {
		return 0, false
	}
	return pick, true
}

func (s *ScriptSource) run(n, draw int) error {
	if err := s.compiled.Set("__bound", n); err != nil {
		return err
	}
	if err := s.compiled.Set("__draw", draw); err != nil {
		return err
	}
	return s.compiled.Run()
}

func (s *ScriptSource) fail(err error) {
	s.failed = true
	s.failOnce.Do(func() {
		zap.L().Warn("strategy script failed, falling back to random draws",
			zap.String("script", s.name),
			zap.Error(err),
		)
	})
}
