package component

// LifeSlot is one heart icon of the graphic life counter.
type LifeSlot struct {
	Slot int
}

var LifeSlotComponent = NewComponent[LifeSlot]()

// LifeText marks the numeric life counter.
type LifeText struct {
	Shown int
}

var LifeTextComponent = NewComponent[LifeText]()
