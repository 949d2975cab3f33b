package component

// PaddleControl moves an entity horizontally from the arrow keys while
// keeping MinGap pixels between it and the side walls.
type PaddleControl struct {
	Speed       float64
	MinGap      float64
	WallWidth   float64
	WindowWidth float64
}

var PaddleControlComponent = NewComponent[PaddleControl]()
