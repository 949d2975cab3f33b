package component

import "image/color"

type Text struct {
	Value string
	Color color.Color
}

var TextComponent = NewComponent[Text]()
