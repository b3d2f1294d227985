package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/drawhelper"
)

var (
	formatName string
	modeName   string
	width      int
	height     int
	outPath    string
	zoom       int
	transform  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the test card",
	Long: `Renders a test card exercising fills, gradients, textures and blits
onto a surface of the chosen format, composing the overlays with the chosen
mode, and writes it as PNG or BMP depending on the output extension.`,
	RunE: runRender,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "ARGB32Premultiplied", "Target pixel format")
	rootCmd.PersistentFlags().StringVar(&modeName, "mode", "SourceOver", "Composition mode for overlays")
	rootCmd.PersistentFlags().IntVar(&width, "width", 256, "Image width")
	rootCmd.PersistentFlags().IntVar(&height, "height", 256, "Image height")
	rootCmd.PersistentFlags().StringVar(&outPath, "out", "testcard.png", "Output image path (.png or .bmp)")
	rootCmd.PersistentFlags().IntVar(&zoom, "zoom", 1, "Nearest-neighbour magnification of the output")
	rootCmd.PersistentFlags().StringVar(&transform, "transform", "",
		"Texture layer affine transform a,b,c,d,e,f mapping (x, y) to (a*x+b*y+c, d*x+e*y+f)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	var err error
	format, ok := drawhelper.ParseFormat(formatName)
	if !ok {
		return fmt.Errorf("unknown format %q", formatName)
	}
	mode, ok := drawhelper.ParseMode(modeName)
	if !ok {
		return fmt.Errorf("unknown mode %q", modeName)
	}
	if zoom < 1 {
		return fmt.Errorf("zoom must be at least 1, got %d", zoom)
	}
	texTransform := defaultTextureTransform()
	if transform != "" {
		if texTransform, err = parseAff3(transform); err != nil {
			return err
		}
	}

	logger.Info("rendering test card", "format", format, "mode", mode, "width", width, "height", height,
		"transform", texTransform)
	card, err := renderTestCard(width, height, format, mode, texTransform)
	if err != nil {
		return err
	}

	var img image.Image = card
	if zoom > 1 {
		img = magnify(card, zoom)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := encode(f, outPath, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	p := message.NewPrinter(language.English)
	b := img.Bounds()
	p.Fprintf(cmd.OutOrStdout(), "wrote %s: %d x %d, %d pixels (%v, %v)\n",
		outPath, b.Dx(), b.Dy(), b.Dx()*b.Dy(), format, mode)
	return nil
}

func encode(w io.Writer, path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode BMP: %w", err)
		}
	case ".png", "":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output extension %q", ext)
	}
	return nil
}

// defaultTextureTransform rotates and enlarges the checkerboard.
func defaultTextureTransform() f64.Aff3 {
	return drawhelper.Rotate(0.4).Multiply(drawhelper.Scale(1.5, 1.5)).Aff3()
}

// parseAff3 parses six comma-separated coefficients in x/image order.
func parseAff3(s string) (f64.Aff3, error) {
	var a f64.Aff3
	parts := strings.Split(s, ",")
	if len(parts) != len(a) {
		return a, fmt.Errorf("transform needs %d coefficients, got %d", len(a), len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return a, fmt.Errorf("transform coefficient %d: %w", i+1, err)
		}
		a[i] = v
	}
	return a, nil
}

func magnify(src image.Image, k int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*k, b.Dy()*k))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// layer is one paint composed over a set of spans.
type layer struct {
	name  string
	paint drawhelper.Paint
	spans []drawhelper.Span
	opts  []drawhelper.Option
}

// renderTestCard draws every paint kind and blit onto a new surface. The
// texture layer is painted through texTransform.
func renderTestCard(w, h int, format drawhelper.Format, mode drawhelper.Mode, texTransform f64.Aff3) (*drawhelper.Surface, error) {
	s, err := drawhelper.NewSurface(w, h, format)
	if err != nil {
		return nil, err
	}
	s.FillRect(0, 0, w, h, 0xffe0e0e0)

	stops := []drawhelper.GradientStop{
		{Pos: 0, Color: 0xff1040c0},
		{Pos: 0.5, Color: 0xfff0f0f0},
		{Pos: 1, Color: 0xffc02010},
	}
	fw, fh := float64(w), float64(h)
	quarter := h / 4

	layers := []layer{
		{
			name:  "linear",
			paint: &drawhelper.LinearGradient{X2: fw / 2, Stops: stops, Spread: drawhelper.SpreadReflect},
			spans: drawhelper.FullSpans(0, 0, w, quarter/2),
		},
		{
			name:  "vertical",
			paint: &drawhelper.LinearGradient{Y1: float64(quarter / 2), Y2: float64(quarter), Stops: stops},
			spans: drawhelper.FullSpans(0, quarter/2, w, quarter-quarter/2),
		},
		{
			name: "radial",
			paint: &drawhelper.RadialGradient{
				CX: fw / 4, CY: fh / 2, Radius: fw / 5,
				FX: fw / 5, FY: fh / 2.2, Stops: stops,
			},
			spans: discSpans(w/4, h/2, min(w, h)/5),
			opts:  []drawhelper.Option{drawhelper.WithMode(mode)},
		},
		{
			name:  "conical",
			paint: &drawhelper.ConicalGradient{CX: 3 * fw / 4, CY: fh / 2, Angle: 30, Stops: stops},
			spans: discSpans(3*w/4, h/2, min(w, h)/5),
			opts:  []drawhelper.Option{drawhelper.WithMode(mode)},
		},
		{
			name:  "translucent",
			paint: drawhelper.Solid(0x8020a040),
			spans: discSpans(w/2, h/2, min(w, h)/4),
			opts:  []drawhelper.Option{drawhelper.WithMode(mode)},
		},
	}

	checker, err := checkerboard(8)
	if err != nil {
		return nil, err
	}
	layers = append(layers, layer{
		name:  "texture",
		paint: &drawhelper.Texture{Image: checker},
		spans: drawhelper.FullSpans(0, 3*quarter, w, h-3*quarter),
		opts: []drawhelper.Option{
			drawhelper.WithMode(mode),
			drawhelper.WithTiled(true),
			drawhelper.WithBilinear(true),
			drawhelper.WithTransform(drawhelper.MatrixFromAff3(texTransform)),
			drawhelper.WithConstAlpha(220),
		},
	})

	for _, l := range layers {
		sd, err := drawhelper.NewSpanData(s, l.paint, l.opts...)
		if err != nil {
			return nil, fmt.Errorf("%s layer: %w", l.name, err)
		}
		sd.Blend(clipSpans(l.spans, w, h))
		logger.Debug("layer drawn", "layer", l.name, "spans", len(l.spans))
	}

	bits := []byte{
		0b00111100, 0b01000010, 0b10100101, 0b10000001,
		0b10100101, 0b10011001, 0b01000010, 0b00111100,
	}
	for i, _n := 0, 4; i < _n; i++ {
		s.BitmapBlit(4+i*12, h/4+4, 0xff000000, bits, 8, 8, 1)
	}

	const rampW, rampH = 64, 8
	ramp := make([]byte, rampW*rampH)
	for i := range ramp {
		ramp[i] = byte((i % rampW) * 255 / (rampW - 1))
	}
	s.AlphaMapBlit(w-rampW-4, h/4+4, 0xff802080, ramp, rampW, rampH, rampW, nil)
	return s, nil
}

// discSpans returns anti-aliased spans of a disc, one span per pixel on
// the rim and one full span for the interior of each row.
func discSpans(cx, cy, r int) []drawhelper.Span {
	var spans []drawhelper.Span
	fr := float64(r)
	for y := cy - r - 1; y <= cy+r+1; y++ {
		dy := float64(y-cy) + 0.5
		for x := cx - r - 1; x <= cx+r+1; {
			dx := float64(x-cx) + 0.5
			d := math.Hypot(dx, dy)
			switch {
			case d <= fr-1:
				n := 0
				for x+n <= cx+r+1 && math.Hypot(float64(x+n-cx)+0.5, dy) <= fr-1 {
					n++
				}
				spans = append(spans, drawhelper.Span{X: x, Y: y, Len: n, Coverage: 255})
				x += n
			case d < fr+1:
				cov := uint8(math.Round((fr + 1 - d) / 2 * 255))
				spans = append(spans, drawhelper.Span{X: x, Y: y, Len: 1, Coverage: cov})
				x++
			default:
				x++
			}
		}
	}
	return spans
}

// clipSpans drops and trims spans outside a w x h surface.
func clipSpans(spans []drawhelper.Span, w, h int) []drawhelper.Span {
	out := spans[:0]
	for _, s := range spans {
		if s.Y < 0 || s.Y >= h {
			continue
		}
		if s.X < 0 {
			s.Len += s.X
			s.X = 0
		}
		s.Len = min(s.Len, w-s.X)
		if s.Len > 0 {
			out = append(out, s)
		}
	}
	return out
}

func checkerboard(n int) (*drawhelper.Surface, error) {
	s, err := drawhelper.NewSurface(2*n, 2*n, drawhelper.FormatARGB32Premultiplied)
	if err != nil {
		return nil, err
	}
	s.FillRect(0, 0, 2*n, 2*n, 0xff303030)
	s.FillRect(0, 0, n, n, 0xfff0c020)
	s.FillRect(n, n, n, n, 0xfff0c020)
	return s, nil
}
