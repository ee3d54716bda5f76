package aml

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// nodeIDCounter is a plain counter; nodes are created on the game goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the built-in render target: an image placed in a rectangle, which
// NodeApplier animates and Game draws.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Placement when no transform is active. Width and Height are also the
	// native size the transform's zoom is relative to.
	X, Y          float64
	Width, Height float64

	// Image is stretched over the node's rectangle. Nil draws a solid
	// rectangle in Color.
	Image *ebiten.Image

	Visible  bool
	UserData any

	// Written by NodeApplier.
	Transform        Transform
	TransformEnabled bool
	Color            color.NRGBA

	disposed bool
}

// NewNode creates a visible, opaque white node covering the given rectangle.
func NewNode(name string, x, y, w, h float64) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Visible: true,
		Color:   color.NRGBA{255, 255, 255, 255},
	}
}

// NewSprite creates a node showing img at its natural size.
func NewSprite(name string, img *ebiten.Image, x, y float64) *Node {
	b := img.Bounds()
	n := NewNode(name, x, y, float64(b.Dx()), float64(b.Dy()))
	n.Image = img
	return n
}

// Bounds implements Target.
func (n *Node) Bounds() Rect {
	return Rect{n.X, n.Y, n.Width, n.Height}
}

// Dispose marks the node as gone. Bindings targeting it stop on their next
// tick.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.ID = 0
	n.Image = nil
	n.UserData = nil
	n.TransformEnabled = false
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// screenAffine maps a unit of image space onto the screen.
func (n *Node) screenAffine(imgW, imgH float64) f64.Aff3 {
	native := f64.Aff3{n.Width / imgW, 0, 0, 0, n.Height / imgH, 0}
	if n.TransformEnabled {
		return multiplyAffine(n.Transform.Affine(), native)
	}
	return multiplyAffine(f64.Aff3{1, 0, n.X, 0, 1, n.Y}, native)
}

// DrawOptions returns the options that draw the node's image (or a 1x1
// pixel when Image is nil) at its current placement and color.
func (n *Node) DrawOptions() *ebiten.DrawImageOptions {
	imgW, imgH := 1.0, 1.0
	if n.Image != nil {
		b := n.Image.Bounds()
		imgW, imgH = float64(b.Dx()), float64(b.Dy())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoMFromAffine(n.screenAffine(imgW, imgH))
	op.ColorScale.ScaleWithColor(n.Color)
	return op
}

// whitePixel is the 1x1 image drawn for nodes without an Image. Created on
// first use so importing the package never touches the graphics driver.
var whitePixel *ebiten.Image

// Draw renders the node onto dst.
func (n *Node) Draw(dst *ebiten.Image) {
	if n.disposed || !n.Visible {
		return
	}
	img := n.Image
	if img == nil {
		if whitePixel == nil {
			whitePixel = ebiten.NewImage(1, 1)
			whitePixel.Fill(color.White)
		}
		img = whitePixel
	}
	dst.DrawImage(img, n.DrawOptions())
}

// NodeApplier is the Applier for *Node targets. Other targets are ignored.
type NodeApplier struct{}

// Apply stores the transform and switches the node to transform mode.
func (NodeApplier) Apply(target Target, t Transform) {
	if n, ok := target.(*Node); ok {
		n.Transform = t
		n.TransformEnabled = true
	}
}

// ApplyColor stores the tint.
func (NodeApplier) ApplyColor(target Target, c color.NRGBA) {
	if n, ok := target.(*Node); ok {
		n.Color = c
	}
}

// Release leaves transform mode, keeping the last position and size as the
// node's own placement. Rotation is dropped.
func (NodeApplier) Release(target Target) {
	n, ok := target.(*Node)
	if !ok || !n.TransformEnabled {
		return
	}
	n.X, n.Y = n.Transform.X, n.Transform.Y
	n.Width, n.Height = n.Transform.Width, n.Transform.Height
	n.TransformEnabled = false
}
