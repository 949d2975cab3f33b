package component

// HitLimit retags an entity for removal once it has absorbed Remaining
// collisions.
type HitLimit struct {
	Remaining int
	RemoveTag string
}

var HitLimitComponent = NewComponent[HitLimit]()
