package component

// Transform places an entity by its top-left corner in window coordinates
// ((0,0) is the top-left of the window, y grows downward).
type Transform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (t *Transform) Center() (float64, float64) {
	return t.X + t.Width/2, t.Y + t.Height/2
}

func (t *Transform) SetCenter(x, y float64) {
	t.X = x - t.Width/2
	t.Y = y - t.Height/2
}

var TransformComponent = NewComponent[Transform]()
