// Command circledemo draws a circle outline with one of the circle
// rasterization strategies and saves it as an image.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/circle"
)

func main() {
	var (
		strategy   = flag.String("strategy", "bresenham", "strategy: "+strategyList())
		radius     = flag.Float64("radius", 190, "circle radius in pixels")
		cx         = flag.Int("cx", 200, "center x")
		cy         = flag.Int("cy", 200, "center y")
		width      = flag.Int("width", 400, "image width")
		height     = flag.Int("height", 400, "image height")
		fg         = flag.String("color", "ff0000", "outline color (hex)")
		bg         = flag.String("background", "ffffff", "background color (hex)")
		octants    = flag.String("octants", "all", "octants to draw, e.g. 7 or 7,8")
		scale      = flag.Int("scale", 1, "nearest-neighbour enlargement factor")
		caption    = flag.Bool("caption", false, "label the image with the strategy name")
		output     = flag.String("output", "circle.png", "output file (.png, .jpg, .bmp, .tiff)")
		listPoints = flag.Bool("points", false, "print every pixel write to stdout")
		gallery    = flag.Bool("gallery", false, "render every strategy, one file each")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		circle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := parseConfig(*strategy, *radius, *cx, *cy, *width, *height, *fg, *bg, *octants)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if *listPoints {
		if err := writePoints(os.Stdout, cfg); err != nil {
			log.Fatalf("Failed to list points: %v", err)
		}
	}

	if *gallery {
		sheets, err := circle.RenderGallery(*width, *height, cfg.background, cfg.circle, nil, cfg.options()...)
		if err != nil {
			log.Fatalf("Failed to render gallery: %v", err)
		}
		for _, sh := range sheets {
			path := galleryPath(*output, sh.Strategy)
			if err := save(sh.Pixmap, sh.Strategy, cfg.circle, *caption, *scale, path); err != nil {
				log.Fatalf("Failed to save: %v", err)
			}
			log.Printf("%s circle saved to %s (%d writes)\n", sh.Strategy, path, sh.Stats.Writes)
		}
		return
	}

	pm := circle.NewPixmap(*width, *height)
	pm.Clear(cfg.background)

	st, err := circle.Render(pm, cfg.circle, cfg.options()...)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := save(pm, cfg.strategy, cfg.circle, *caption, *scale, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s circle saved to %s (%d writes)\n", cfg.strategy, *output, st.Writes)
}

// save optionally labels and enlarges pm before writing it to path.
func save(pm *circle.Pixmap, s circle.Strategy, c circle.Circle, caption bool, scale int, path string) error {
	if caption {
		pm.DrawCaption(circle.Caption(s, c), circle.Black)
	}
	if scale == 1 {
		return pm.Save(path)
	}
	img, err := pm.Scale(scale)
	if err != nil {
		return err
	}
	return circle.SaveImage(path, img)
}

// galleryPath inserts the strategy name before the extension:
// "out/circle.png" becomes "out/circle-midpoint.png".
func galleryPath(output string, s circle.Strategy) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "-" + s.String() + ext
}

// config is the validated command line.
type config struct {
	strategy   circle.Strategy
	circle     circle.Circle
	color      circle.RGB
	background circle.RGB
	octants    circle.Octants
}

func parseConfig(strategy string, radius float64, cx, cy, width, height int, fg, bg, octants string) (config, error) {
	var cfg config
	var err error

	if err = circle.CheckSize(width, height); err != nil {
		return cfg, err
	}

	if cfg.strategy, err = circle.ParseStrategy(strategy); err != nil {
		return cfg, err
	}
	r, err := circle.RadiusFromFloat(radius)
	if err != nil {
		return cfg, err
	}
	if cfg.circle, err = circle.NewCircle(cx, cy, r); err != nil {
		return cfg, err
	}
	if cfg.color, err = circle.ParseHex(fg); err != nil {
		return cfg, err
	}
	if cfg.background, err = circle.ParseHex(bg); err != nil {
		return cfg, err
	}
	if cfg.octants, err = circle.ParseOctants(octants); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c config) options() []circle.RenderOption {
	return []circle.RenderOption{
		circle.WithStrategy(c.strategy),
		circle.WithColor(c.color),
		circle.WithOctants(c.octants),
	}
}

// writePoints prints one "x y alpha" line per pixel write.
func writePoints(w io.Writer, cfg config) error {
	pixels, err := circle.Pixels(cfg.circle, cfg.options()...)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for px := range pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", px.X, px.Y, px.Alpha); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func strategyList() string {
	var names []string
	for _, s := range circle.Strategies() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
