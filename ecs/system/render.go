package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

const basicFontHeight = 13

// view maps world coordinates to screen coordinates.
type view struct {
	scale float64
	offX  float64
	offY  float64
}

var identityView = view{scale: 1}

func (v view) apply(x, y float64) (float64, float64) {
	return x*v.scale + v.offX, y*v.scale + v.offY
}

// worldView centers the camera target on the screen and shrinks the world by
// the camera zoom. Without a live camera the world is drawn 1:1.
func worldView(w *ecs.World, screenW, screenH float64) view {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return identityView
	}
	camera, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok || camera.Zoom <= 0 {
		return identityView
	}
	target, ok := ecs.Get(w, ecs.Entity(camera.Target), component.TransformComponent.Kind())
	if !ok {
		return identityView
	}
	scale := 1 / camera.Zoom
	tx, ty := target.Center()
	return view{
		scale: scale,
		offX:  screenW/2 - tx*scale,
		offY:  screenH/2 - ty*scale,
	}
}

type RenderSystem struct {
	face *text.GoXFace
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	world := worldView(w, float64(bounds.Dx()), float64(bounds.Dy()))

	for _, e := range drawOrder(w) {
		if ecs.Has(w, e, component.HiddenComponent.Kind()) {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		v := world
		if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			v = identityView
		}

		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.Image != nil {
			r.drawSprite(screen, s.Image, t, v)
		}
		if txt, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok && txt.Value != "" {
			r.drawText(screen, txt, t, v)
		}
	}
}

func (r *RenderSystem) drawSprite(screen, img *ebiten.Image, t *component.Transform, v view) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(t.Width/float64(iw)*v.scale, t.Height/float64(ih)*v.scale)
	x, y := v.apply(t.X, t.Y)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawText(screen *ebiten.Image, txt *component.Text, t *component.Transform, v view) {
	scale := v.scale
	if t.Height > 0 {
		scale *= t.Height / basicFontHeight
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	x, y := v.apply(t.X, t.Y)
	op.GeoM.Translate(x, y)
	if txt.Color != nil {
		op.ColorScale.ScaleWithColor(txt.Color)
	}
	text.Draw(screen, txt.Value, r.face, op)
}

// drawOrder lists drawable entities by layer, ties broken by entity handle.
func drawOrder(w *ecs.World) []ecs.Entity {
	var entities []ecs.Entity
	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Transform) {
		if ecs.Has(w, e, component.SpriteComponent.Kind()) || ecs.Has(w, e, component.TextComponent.Kind()) {
			entities = append(entities, e)
		}
	})

	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.LayerComponent.Kind()); ok {
			return layer.Index
		}
		return component.LayerDefault
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}
