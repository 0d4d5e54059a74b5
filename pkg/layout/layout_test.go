package layout

import (
	"bytes"
	"footballdrivebot/pkg/drive"
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/render"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleFrame() render.Frame {
	m := drive.NewModel(field.Home)
	m.StartDrive(field.Home, 25)
	_ = m.AddPlay(field.Home, 20)
	_ = m.AddPlay(field.Home, -5)
	first := 45.0
	return render.NewRenderer(render.DefaultColors()).Render(m.Drives(), &first)
}

func TestEncodePNG(t *testing.T) {
	var b bytes.Buffer
	if err := EncodePNG(&b, sampleFrame().Primitives); err != nil {
		t.Fatalf("EncodePNG: %s", err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatalf("output is not a png: %s", err)
	}
	if img.Bounds().Dx() != 720 || img.Bounds().Dy() != 300 {
		t.Errorf("unexpected canvas %v", img.Bounds())
	}

	// middle of the home end zone
	r, g, bl, _ := img.At(30, 150).RGBA()
	hr, hg, hb, _ := render.DefaultHomeColor.RGBA()
	if r != hr || g != hg || bl != hb {
		t.Errorf("home end zone pixel = %d,%d,%d", r>>8, g>>8, bl>>8)
	}

	// open grass between yard lines, below the play bars
	r, g, bl, _ = img.At(90, 250).RGBA()
	fr, fg, fb, _ := render.FieldGreen.RGBA()
	if r != fr || g != fg || bl != fb {
		t.Errorf("grass pixel = %d,%d,%d", r>>8, g>>8, bl>>8)
	}
}

func TestEncodeSVG(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeSVG(&b, sampleFrame().Primitives); err != nil {
		t.Fatalf("EncodeSVG: %s", err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "<svg") {
		t.Errorf("output does not look like svg: %.80s", out)
	}
}

func TestBuildFieldFiles(t *testing.T) {
	dir := t.TempDir()
	prims := sampleFrame().Primitives

	pngPath := filepath.Join(dir, "field.png")
	if err := BuildFieldPNG(pngPath, prims); err != nil {
		t.Fatalf("BuildFieldPNG: %s", err)
	}
	svgPath := filepath.Join(dir, "field.svg")
	if err := BuildFieldSVG(svgPath, prims); err != nil {
		t.Fatalf("BuildFieldSVG: %s", err)
	}
	for _, p := range []string{pngPath, svgPath} {
		info, err := os.Stat(p)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s was not written: %v", p, err)
		}
	}
}

func TestPNGBytesIsDeterministic(t *testing.T) {
	prims := sampleFrame().Primitives
	a, err := PNGBytes(prims)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PNGBytes(prims)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same primitives produced different images")
	}
}
