package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/bricker/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		alive        int
	}{
		{"single", 1, 0, 0},
		{"three_create_destroy_middle", 3, 1, 2},
		{"none_destroy", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex >= 0 {
				require.True(t, DestroyEntity(w, ents[c.destroyIndex]))
				require.False(t, IsAlive(w, ents[c.destroyIndex]))
				require.False(t, DestroyEntity(w, ents[c.destroyIndex]), "second destroy must report false")
			}
			require.Len(t, Entities(w), c.alive)
		})
	}
}

func TestWorldReusesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, h.Kind(), intPtr(1)))
	require.True(t, DestroyEntity(w, old))

	fresh := CreateEntity(w)
	require.Equal(t, old.id(), fresh.id())
	require.NotEqual(t, old, fresh)
	require.False(t, IsAlive(w, old))
	require.False(t, Has(w, fresh, h.Kind()), "destroy must drop components of the old generation")
	require.ErrorIs(t, Add(w, old, h.Kind(), intPtr(2)), component.ErrEntityNotAlive)
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				require.True(t, ok)
				require.Equal(t, 10, *v)
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				require.True(t, Has(w, e1, h2.Kind()))
				require.True(t, Has(w, e2, h2.Kind()))
				require.Equal(t, 2, Count(w, h2.Kind()))
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.setup())
			tc.check(t)
			require.True(t, tc.teardown())
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	require.ErrorIs(t, Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)
	require.ErrorIs(t, Add[int](w, e, component.NewComponentKind[int](), nil), component.ErrNilComponent)
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	require.NoError(t, Add(w, e1, h.Kind(), intPtr(1)))
	require.NoError(t, Add(w, e3, h.Kind(), intPtr(3)))

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	require.Contains(t, set, e1)
	require.Contains(t, set, e3)
	require.NotContains(t, set, e2)
}

func TestForEachSkipsEntitiesDestroyedDuringPass(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	require.NoError(t, Add(w, e1, h.Kind(), intPtr(1)))
	require.NoError(t, Add(w, e2, h.Kind(), intPtr(2)))

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e1)
		DestroyEntity(w, e2)
	})
	require.Equal(t, 1, visited)
}

func TestForEach2And3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e1, ka, intPtr(1)))
				require.NoError(t, Add(w, e2, ka, intPtr(2)))
				require.NoError(t, Add(w, e2, kb, intPtr(3)))
				require.NoError(t, Add(w, e2, kc, intPtr(5)))
				require.NoError(t, Add(w, e3, kb, intPtr(4)))

				var pairs []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { pairs = append(pairs, e) })
				require.Equal(t, []Entity{e2}, pairs)

				var triples []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { triples = append(triples, e) })
				require.Equal(t, []Entity{e2}, triples)
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))
				require.NoError(t, Add(w, e, kb, intPtr(2)))
				require.True(t, DestroyEntity(w, e))

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				require.Empty(t, res)
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				require.Empty(t, res)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()

	_, ok := First(w, h.Kind())
	require.False(t, ok)

	e := CreateEntity(w)
	require.NoError(t, Add(w, e, h.Kind(), stringPtr("camera")))

	got, ok := First(w, h.Kind())
	require.True(t, ok)
	require.Equal(t, e, got)
}

type recordingSystem struct {
	name  string
	calls *[]string
}

func (s recordingSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var calls []string
	s := NewScheduler(
		recordingSystem{name: "input", calls: &calls},
		nil,
		recordingSystem{name: "physics", calls: &calls},
	)
	require.Len(t, s.Systems(), 2)

	w.Events().Push(Event{Type: EventCollision, Data: CollisionEvent{Normal: cp.Vector{Y: -1}}})
	s.Update(w)

	require.Equal(t, []string{"input", "physics"}, calls)
	require.Zero(t, w.Events().Len())
}

func TestEventQueueDrainKeepsOtherTypes(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventCollision})
	q.Push(Event{Type: "other"})
	q.Push(Event{Type: EventCollision})

	require.Len(t, q.Drain(EventCollision), 2)
	require.Equal(t, 1, q.Len())
	require.Empty(t, q.Drain(EventCollision))
}

func TestComponentKindString(t *testing.T) {
	require.Equal(t, "invalid", component.ComponentKind[int]{}.String())
	require.Contains(t, component.TransformComponent.Kind().String(), "component.Transform#")
}
