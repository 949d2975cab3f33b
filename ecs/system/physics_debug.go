package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// Collider outline colors.
var (
	debugSolid = cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.8}
	debugMover = cp.FColor{R: 0.1, G: 0.8, B: 0.1, A: 0.8}
	debugOther = cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
)

// DrawPhysicsDebug outlines every collider through the same view as the
// sprites.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	cp.DrawSpace(space, &colliderOutliner{
		dst:  screen,
		view: worldView(w, float64(bounds.Dx()), float64(bounds.Dy())),
	})
}

// DrawCountersDebug prints the live counters in the top-left corner.
func DrawCountersDebug(screen *ebiten.Image, w *ecs.World, bricks, lives, paddles *common.Counter) {
	if screen == nil || w == nil {
		return
	}
	msg := fmt.Sprintf("TPS %.0f\nbricks %d\nlives %d\npaddles %d\nentities %d",
		ebiten.ActualTPS(), bricks.Value(), lives.Value(), paddles.Value(), len(ecs.Entities(w)))
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		msg += fmt.Sprintf("\ncamera %v", camEntity)
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 30)
}

// colliderOutliner implements cp.Drawer with one-pixel strokes. Fill colors
// are ignored; only outlines are drawn.
type colliderOutliner struct {
	dst  *ebiten.Image
	view view
}

func (o *colliderOutliner) Flags() uint { return cp.DRAW_SHAPES }
func (o *colliderOutliner) OutlineColor() cp.FColor { return debugOther }
func (o *colliderOutliner) ConstraintColor() cp.FColor { return debugOther }
func (o *colliderOutliner) CollisionPointColor() cp.FColor { return debugOther }
func (o *colliderOutliner) Data() interface{} { return nil }

func (o *colliderOutliner) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	if shape.Body().GetType() == cp.BODY_STATIC {
		return debugSolid
	}
	return debugMover
}

func (o *colliderOutliner) DrawCircle(pos cp.Vector, angle, radius float64, _, fill cp.FColor, _ interface{}) {
	if radius <= 0 {
		return
	}
	cx, cy := o.view.apply(pos.X, pos.Y)
	r := radius * o.view.scale
	vector.StrokeCircle(o.dst, float32(cx), float32(cy), float32(r), 1, rgba(fill), false)
	// Spoke so rotation stays visible.
	o.stroke(pos, cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}, fill)
}

func (o *colliderOutliner) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	o.stroke(a, b, fill)
}

func (o *colliderOutliner) DrawFatSegment(a, b cp.Vector, _ float64, _, fill cp.FColor, _ interface{}) {
	o.stroke(a, b, fill)
}

func (o *colliderOutliner) DrawPolygon(count int, verts []cp.Vector, _ float64, _, fill cp.FColor, _ interface{}) {
	if count > len(verts) {
		count = len(verts)
	}
	for i := 0; i < count; i++ {
		o.stroke(verts[i], verts[(i+1)%count], fill)
	}
}

func (o *colliderOutliner) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	x, y := o.view.apply(pos.X, pos.Y)
	r := math.Max(size*o.view.scale/2, 1)
	vector.StrokeCircle(o.dst, float32(x), float32(y), float32(r), 1, rgba(fill), false)
}

func (o *colliderOutliner) stroke(a, b cp.Vector, c cp.FColor) {
	x1, y1 := o.view.apply(a.X, a.Y)
	x2, y2 := o.view.apply(b.X, b.Y)
	vector.StrokeLine(o.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, rgba(c), false)
}

func rgba(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(common.Clamp(float64(v), 0, 1) * 255)
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
