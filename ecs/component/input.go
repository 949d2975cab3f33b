package component

// Input stores the per-frame keyboard snapshot.
type Input struct {
	Left     bool
	Right    bool
	ForceWin bool
}

var InputComponent = NewComponent[Input]()
