package component

import "github.com/jakecoffman/cp"

type BodyType int

const (
	// BodyStatic never moves: bricks and walls.
	BodyStatic BodyType = iota
	// BodyKinematic moves only by its velocity and is not pushed around:
	// paddles.
	BodyKinematic
	// BodyDynamic is integrated by the space: balls, pucks, hearts.
	BodyDynamic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. The
// collider size comes from the entity's Transform; Radius > 0 selects a
// circle instead of a box.
type PhysicsBody struct {
	Type   BodyType
	Radius float64
	Body   *cp.Body
	Shape  *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
