package component

// Tag names an entity's role. It is set once at creation and only rewritten
// to mark the entity for removal by the end-of-frame sweep.
type Tag struct {
	Name string
}

const (
	TagMainBall              = "main-ball"
	TagBasePaddle            = "base-paddle"
	TagSpecialPaddle         = "special-paddle"
	TagSpecialPaddleToRemove = "special-paddle-to-remove"
	TagFallenHeart           = "fallen-heart"
	TagFallenHeartToRemove   = "fallen-heart-to-remove"
	TagPuck                  = "puck"
)

var TagComponent = NewComponent[Tag]()
