package component

import "github.com/milk9111/bricker/common"

// LifePickup grants one life on its first accepted collision, then retags
// the entity with RemoveTag.
type LifePickup struct {
	Lives     *common.Counter
	RemoveTag string
	Collected bool
}

var LifePickupComponent = NewComponent[LifePickup]()

// CollisionFilter restricts an entity to colliding only with entities tagged
// Only.
type CollisionFilter struct {
	Only string
}

var CollisionFilterComponent = NewComponent[CollisionFilter]()
