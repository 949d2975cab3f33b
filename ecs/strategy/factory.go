package strategy

import (
	"github.com/milk9111/bricker/ecs/component"
)

// Kind is a strategy bucket. The first five are the special strategies, in
// the order the random draw maps onto them.
type Kind int

const (
	KindPucks Kind = iota
	KindPaddle
	KindLife
	KindCamera
	KindDouble
	KindBasic
)

// specialKinds is the number of buckets a composite sub-draw chooses from.
const specialKinds = int(KindBasic)

func (k Kind) String() string {
	switch k {
	case KindPucks:
		return "pucks"
	case KindPaddle:
		return "paddle"
	case KindLife:
		return "life"
	case KindCamera:
		return "camera"
	case KindDouble:
		return "double"
	default:
		return "basic"
	}
}

// Factory binds bricks to strategies. All strategies it builds share one
// Basic.
type Factory struct {
	deps      *Deps
	basic     *Basic
	bound     int
	doubleMin int
	doubleMax int
	chosen    map[Kind]int
}

func NewFactory(deps *Deps, basic *Basic) *Factory {
	f := &Factory{
		deps:      deps,
		basic:     basic,
		bound:     10,
		doubleMin: 2,
		doubleMax: 3,
		chosen:    make(map[Kind]int),
	}
	if deps != nil && deps.Spec != nil {
		f.bound = deps.Spec.Bricks.ProbabilityBound
		f.doubleMin = deps.Spec.Bricks.DoubleMin
		f.doubleMax = deps.Spec.Bricks.DoubleMax
	}
	return f
}

func (f *Factory) Basic() *Basic {
	return f.basic
}

// Choose draws a bucket in [0, bound): 0..4 map onto the special kinds,
// anything above is a plain brick.
func (f *Factory) Choose() component.CollisionStrategy {
	kind := KindBasic
	if idx := f.deps.Rand.IntN(f.bound); idx < specialKinds {
		kind = Kind(idx)
	}
	f.chosen[kind]++
	return f.Create(kind)
}

// Create builds the strategy for kind. Composite sub-strategies are built
// through Create as well but never include another composite.
func (f *Factory) Create(kind Kind) component.CollisionStrategy {
	switch kind {
	case KindPucks:
		return NewAddPucks(f.basic, f.deps)
	case KindPaddle:
		return NewAddPaddle(f.basic, f.deps)
	case KindLife:
		return NewAddLife(f.basic, f.deps)
	case KindCamera:
		return NewCamera(f.basic, f.deps)
	case KindDouble:
		kinds := f.doubleKinds()
		subs := make([]component.CollisionStrategy, 0, len(kinds))
		for _, k := range kinds {
			subs = append(subs, f.Create(k))
		}
		return NewDouble(f.basic, subs...)
	default:
		return f.basic
	}
}

// doubleKinds records doubleMin sub-kinds. Drawing the composite bucket
// records nothing and raises the requirement by one, capped at doubleMax.
func (f *Factory) doubleKinds() []Kind {
	required := f.doubleMin
	recorded := make([]Kind, 0, f.doubleMax)
	for len(recorded) < required && len(recorded) < f.doubleMax {
		d := Kind(f.deps.Rand.IntN(specialKinds))
		if d == KindDouble {
			required++
			continue
		}
		recorded = append(recorded, d)
	}
	return recorded
}

// Chosen returns how many bricks were bound to each kind so far.
func (f *Factory) Chosen() map[Kind]int {
	out := make(map[Kind]int, len(f.chosen))
	for k, n := range f.chosen {
		out[k] = n
	}
	return out
}

// KindOf reports which bucket built s.
func KindOf(s component.CollisionStrategy) Kind {
	switch s.(type) {
	case *AddPucks:
		return KindPucks
	case *AddPaddle:
		return KindPaddle
	case *AddLife:
		return KindLife
	case *Camera:
		return KindCamera
	case *Double:
		return KindDouble
	default:
		return KindBasic
	}
}
