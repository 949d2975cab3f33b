package strategy

import "github.com/milk9111/bricker/ecs/component"

// Double destroys the brick once, then runs every sub-strategy in order. The
// subs' own Basic calls find the brick gone and do nothing.
type Double struct {
	basic *Basic
	subs  []component.CollisionStrategy
}

func NewDouble(basic *Basic, subs ...component.CollisionStrategy) *Double {
	return &Double{basic: basic, subs: subs}
}

func (s *Double) OnCollision(c *component.Collision) {
	if s == nil || c == nil {
		return
	}
	s.basic.OnCollision(c)
	for _, sub := range s.subs {
		sub.OnCollision(c)
	}
}

func (s *Double) Subs() []component.CollisionStrategy {
	if s == nil {
		return nil
	}
	return append([]component.CollisionStrategy(nil), s.subs...)
}
