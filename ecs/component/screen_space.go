package component

// ScreenSpace pins an entity to window coordinates: the follow camera never
// moves or scales it. The background and the life HUD use it.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
