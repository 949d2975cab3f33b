package component

// Bounce makes an entity reflect its velocity off every collision normal.
// Collisions counts the collision events the entity has taken part in.
type Bounce struct {
	Collisions int
}

var BounceComponent = NewComponent[Bounce]()
