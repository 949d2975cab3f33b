package component

// Layer is the scene layer an entity was added to. It orders drawing and
// scopes removals: a brick is only ever removed from LayerStatic.
type Layer struct {
	Index int
}

const (
	LayerBackground = -200
	LayerStatic     = -100
	LayerDefault    = 0
	LayerForeground = 100
	LayerUI         = 200
)

var LayerComponent = NewComponent[Layer]()
