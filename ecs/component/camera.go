package component

// Camera follows Target. Zoom is the ratio between the visible extent and the
// window, so 1.2 shows 20% more of the world around the target.
type Camera struct {
	Target uint64
	Zoom   float64
}

var CameraComponent = NewComponent[Camera]()
