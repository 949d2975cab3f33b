package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/prefabs"
)

// scriptedSource replays fixed draws and panics when a test under-provisions
// them.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		panic("scripted source: out of int draws")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scripted source: out of float draws")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

type fixture struct {
	deps    *Deps
	bricks  *common.Counter
	basic   *Basic
	factory *Factory
	ball    ecs.Entity
	src     *scriptedSource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)

	w := ecs.NewWorld()
	src := &scriptedSource{}
	deps := &Deps{
		World:   w,
		Spec:    spec,
		Lives:   common.NewCounter(spec.Lives.Initial),
		Paddles: common.NewCounter(1),
		Rand:    src,
	}
	bricks := common.NewCounter(0)
	basic := NewBasic(w, bricks)

	ball, err := entity.NewBall(w, spec, entity.Art{})
	require.NoError(t, err)

	return &fixture{deps: deps, bricks: bricks, basic: basic, factory: NewFactory(deps, basic), ball: ball, src: src}
}

// hit builds a brick bound to s and reports a collision between it and
// other, the way the collision system does.
func (f *fixture) hit(t *testing.T, s component.CollisionStrategy, other ecs.Entity) ecs.Entity {
	t.Helper()
	brick, err := entity.NewBrick(f.deps.World, entity.Art{}, 100, 40, 80, 15, s)
	require.NoError(t, err)
	f.bricks.Increment()

	tag := ""
	if tg, ok := ecs.Get(f.deps.World, other, component.TagComponent.Kind()); ok {
		tag = tg.Name
	}
	s.OnCollision(&component.Collision{
		Brick:    uint64(brick),
		Other:    uint64(other),
		CenterX:  140,
		CenterY:  47.5,
		OtherTag: tag,
	})
	return brick
}

func countTagged(w *ecs.World, name string) int {
	n := 0
	ecs.ForEach(w, component.TagComponent.Kind(), func(_ ecs.Entity, tag *component.Tag) {
		if tag.Name == name {
			n++
		}
	})
	return n
}

func TestBasicRemovesBrickOnce(t *testing.T) {
	f := newFixture(t)

	brick := f.hit(t, f.basic, f.ball)
	require.False(t, ecs.IsAlive(f.deps.World, brick))
	require.Equal(t, 0, f.bricks.Value())

	f.basic.OnCollision(&component.Collision{Brick: uint64(brick), Other: uint64(f.ball)})
	require.Equal(t, 0, f.bricks.Value(), "a dead brick is never counted twice")
}

func TestBasicIgnoresEntitiesOutsideTheStaticLayer(t *testing.T) {
	f := newFixture(t)
	w := f.deps.World

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.BrickComponent.Kind(), &component.Brick{Strategy: f.basic}))
	require.NoError(t, ecs.Add(w, e, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerDefault}))
	f.bricks.Increment()

	f.basic.OnCollision(&component.Collision{Brick: uint64(e), Other: uint64(f.ball)})
	require.True(t, ecs.IsAlive(w, e))
	require.Equal(t, 1, f.bricks.Value())

	f.basic.OnCollision(&component.Collision{Brick: uint64(f.ball), Other: uint64(e)})
	require.True(t, ecs.IsAlive(w, f.ball), "entities without a brick component are never removed")
}

func TestEveryStrategyDecrementsOnce(t *testing.T) {
	tests := []struct {
		name  string
		ints  []int
		float []float64
		build func(f *fixture) component.CollisionStrategy
	}{
		{name: "basic", build: func(f *fixture) component.CollisionStrategy { return f.basic }},
		{name: "life", build: func(f *fixture) component.CollisionStrategy { return NewAddLife(f.basic, f.deps) }},
		{name: "paddle", build: func(f *fixture) component.CollisionStrategy { return NewAddPaddle(f.basic, f.deps) }},
		{
			name:  "pucks",
			ints:  []int{0, 1},
			float: []float64{0.25},
			build: func(f *fixture) component.CollisionStrategy { return NewAddPucks(f.basic, f.deps) },
		},
		{name: "camera", build: func(f *fixture) component.CollisionStrategy { return NewCamera(f.basic, f.deps) }},
		{
			name:  "double_with_three_subs",
			ints:  []int{2, 4, 3, 0, 1, 1},
			float: []float64{0.5},
			build: func(f *fixture) component.CollisionStrategy { return f.factory.Create(KindDouble) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.src.ints = tc.ints
			f.src.floats = tc.float

			// Two bricks in play; one is hit.
			f.bricks.Increment()
			s := tc.build(f)
			f.hit(t, s, f.ball)

			require.Equal(t, 1, f.bricks.Value())
		})
	}
}

func TestAddLifeSpawnsHeartWithoutGrantingLife(t *testing.T) {
	f := newFixture(t)

	f.hit(t, NewAddLife(f.basic, f.deps), f.ball)

	require.Equal(t, 1, countTagged(f.deps.World, component.TagFallenHeart))
	require.Equal(t, 3, f.deps.Lives.Value())

	ecs.ForEach2(f.deps.World, component.LifePickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pickup *component.LifePickup, transform *component.Transform) {
		require.Same(t, f.deps.Lives, pickup.Lives)
		x, y := transform.Center()
		require.Equal(t, 140.0, x)
		require.Equal(t, 47.5, y)
	})
}

func TestAddPaddleNeverExceedsTwoPaddles(t *testing.T) {
	f := newFixture(t)
	s := NewAddPaddle(f.basic, f.deps)

	f.hit(t, s, f.ball)
	require.Equal(t, 2, f.deps.Paddles.Value())
	require.Equal(t, 1, countTagged(f.deps.World, component.TagSpecialPaddle))

	f.hit(t, s, f.ball)
	f.hit(t, s, f.ball)
	require.Equal(t, 2, f.deps.Paddles.Value())
	require.Equal(t, 1, countTagged(f.deps.World, component.TagSpecialPaddle))
	require.Equal(t, 0, f.bricks.Value(), "bricks are destroyed even at the paddle cap")
}

func TestAddPucksSpawnsTwoTaggedPucks(t *testing.T) {
	f := newFixture(t)
	f.src.ints = []int{0, 1}
	f.src.floats = []float64{0.5}

	f.hit(t, NewAddPucks(f.basic, f.deps), f.ball)

	var pucks []ecs.Entity
	ecs.ForEach(f.deps.World, component.TagComponent.Kind(), func(e ecs.Entity, tag *component.Tag) {
		if tag.Name == component.TagPuck {
			pucks = append(pucks, e)
		}
	})
	require.Len(t, pucks, 2)

	velocities := map[[2]float64]bool{}
	for _, puck := range pucks {
		transform, _ := ecs.Get(f.deps.World, puck, component.TransformComponent.Kind())
		x, y := transform.Center()
		require.InDelta(t, 140.0, x, 1e-9)
		require.InDelta(t, 47.5, y, 1e-9)

		vel, _ := ecs.Get(f.deps.World, puck, component.VelocityComponent.Kind())
		velocities[[2]float64{roundTo(vel.X), roundTo(vel.Y)}] = true
	}
	require.True(t, velocities[[2]float64{-100, 100}], "first puck uses the diagonal draw")
	require.True(t, velocities[[2]float64{0, 100}], "second puck uses the angle draw")
}

func roundTo(v float64) float64 {
	const eps = 1e-6
	if v < eps && v > -eps {
		return 0
	}
	return float64(int64(v*1000+0.5*sign(v))) / 1000
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func TestCameraOnlyForMainBallAndOnlyOnce(t *testing.T) {
	f := newFixture(t)
	w := f.deps.World
	s := NewCamera(f.basic, f.deps)

	puck, err := entity.NewPuck(w, f.deps.Spec, entity.Art{}, 10, 10, ballVelocity())
	require.NoError(t, err)
	f.hit(t, s, puck)
	require.Zero(t, ecs.Count(w, component.CameraComponent.Kind()))

	f.hit(t, s, f.ball)
	require.Equal(t, 1, ecs.Count(w, component.CameraComponent.Kind()))
	camera, _ := ecs.First(w, component.CameraComponent.Kind())
	c, _ := ecs.Get(w, camera, component.CameraComponent.Kind())
	require.Equal(t, uint64(f.ball), c.Target)
	require.Equal(t, 1.2, c.Zoom)

	f.hit(t, s, f.ball)
	require.Equal(t, 1, ecs.Count(w, component.CameraComponent.Kind()))
	require.Equal(t, 0, f.bricks.Value())
}
