package layout

import (
	"bytes"
	"encoding/xml"
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/render"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/llgcode/draw2d/draw2dsvg"
	"github.com/pkg/errors"
)

var (
	mu = sync.Mutex{}
)

func canvas() image.Rectangle {
	return image.Rect(0, 0, int(field.Width), int(field.Height))
}

// Paint replays the primitives, in order, on top of the field background.
func Paint(gc draw2d.GraphicContext, prims []render.Primitive) {
	gc.Save()
	defer gc.Restore()

	gc.SetLineCap(draw2d.ButtCap)
	fillRect(gc, 0, 0, field.Width, field.Height, render.FieldGreen)
	for _, p := range prims {
		switch prim := p.(type) {
		case render.Line:
			strokeLine(gc, prim)
		case render.FilledRect:
			fillRect(gc, prim.Origin.X, prim.Origin.Y, prim.Width, prim.Height, prim.Color)
		}
	}
}

func strokeLine(gc draw2d.GraphicContext, l render.Line) {
	gc.BeginPath()
	gc.SetStrokeColor(l.Color)
	gc.SetLineWidth(l.Width)
	gc.MoveTo(l.From.X, l.From.Y)
	gc.LineTo(l.To.X, l.To.Y)
	gc.Stroke()
}

func fillRect(gc draw2d.GraphicContext, x, y, w, h float64, c color.Color) {
	gc.BeginPath()
	gc.SetFillColor(c)
	draw2dkit.Rectangle(gc, x, y, x+w, y+h)
	gc.Fill()
}

func rasterize(prims []render.Primitive) *image.RGBA {
	dest := image.NewRGBA(canvas())
	gc := draw2dimg.NewGraphicContext(dest)
	Paint(gc, prims)
	return dest
}

func vectorize(prims []render.Primitive) *draw2dsvg.Svg {
	dest := draw2dsvg.NewSvg()
	gc := draw2dsvg.NewGraphicContext(dest)
	Paint(gc, prims)
	return dest
}

func EncodePNG(w io.Writer, prims []render.Primitive) error {
	mu.Lock()
	defer mu.Unlock()
	return errors.Wrap(png.Encode(w, rasterize(prims)), "encoding field png")
}

func EncodeSVG(w io.Writer, prims []render.Primitive) error {
	mu.Lock()
	defer mu.Unlock()
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "\t")
	return errors.Wrap(encoder.Encode(vectorize(prims)), "encoding field svg")
}

// PNGBytes renders the primitives into an in-memory PNG.
func PNGBytes(prims []render.Primitive) ([]byte, error) {
	var b bytes.Buffer
	if err := EncodePNG(&b, prims); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func BuildFieldPNG(path string, prims []render.Primitive) error {
	mu.Lock()
	defer mu.Unlock()
	return draw2dimg.SaveToPngFile(path, rasterize(prims))
}

func BuildFieldSVG(path string, prims []render.Primitive) error {
	mu.Lock()
	defer mu.Unlock()
	return draw2dsvg.SaveToSvgFile(path, vectorize(prims))
}
