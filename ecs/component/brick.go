package component

// Collision describes a brick being hit. Entities are raw ecs.Entity values;
// the brick's center and the other entity's tag are captured before any
// strategy runs because destroying the brick drops its components.
type Collision struct {
	Brick    uint64
	Other    uint64
	CenterX  float64
	CenterY  float64
	OtherTag string
}

// CollisionStrategy is the behavior bound to a brick at level construction.
type CollisionStrategy interface {
	OnCollision(c *Collision)
}

// Brick binds a destructible grid cell to its strategy.
type Brick struct {
	Strategy CollisionStrategy
}

var BrickComponent = NewComponent[Brick]()
