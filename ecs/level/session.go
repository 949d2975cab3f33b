package level

import (
	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/prefabs"
)

// Session holds the counters that outlive a single level. A restart resets
// them in place, so anything holding a pointer keeps seeing the live value.
type Session struct {
	Lives        *common.Counter
	Paddles      *common.Counter
	CameraOffset *common.Counter
}

// NewSession starts with the configured lives and one paddle, the base
// paddle, already counted.
func NewSession(spec *prefabs.GameSpec) *Session {
	lives := 0
	if spec != nil {
		lives = spec.Lives.Initial
	}
	return &Session{
		Lives:        common.NewCounter(lives),
		Paddles:      common.NewCounter(1),
		CameraOffset: common.NewCounter(0),
	}
}

func (s *Session) Reset() {
	if s == nil {
		return
	}
	s.Lives.Reset()
	s.Paddles.Reset()
	s.CameraOffset.Reset()
}
