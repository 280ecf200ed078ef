package circle

import (
	"fmt"

	"github.com/gogpu/circle/internal/parallel"
)

// Sheet is one strategy rendered on its own pixmap.
type Sheet struct {
	Strategy Strategy
	Pixmap   *Pixmap
	Stats    Stats
}

// RenderGallery renders c once per strategy, each on a fresh width×height
// pixmap cleared to background. Strategies render concurrently; the sheets
// come back in the order of strategies. A nil list renders every strategy.
//
// Options apply to every sheet; a WithStrategy among them is overridden.
func RenderGallery(width, height int, background RGB, c Circle, strategies []Strategy, opts ...RenderOption) ([]Sheet, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	if err := checkRadius(c.Radius); err != nil {
		return nil, err
	}
	if strategies == nil {
		strategies = Strategies()
	}

	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	sheets := make([]Sheet, len(strategies))
	jobs := make([]func() error, len(strategies))
	for i, s := range strategies {
		jobs[i] = func() error {
			pm := NewPixmap(width, height)
			pm.Clear(background)
			st, err := Render(pm, c, append(opts[:len(opts):len(opts)], WithStrategy(s))...)
			if err != nil {
				return fmt.Errorf("%v: %w", s, err)
			}
			sheets[i] = Sheet{Strategy: s, Pixmap: pm, Stats: st}
			return nil
		}
	}

	if err := pool.ExecuteAll(jobs); err != nil {
		return nil, err
	}
	Logger().Debug("gallery rendered", "sheets", len(sheets), "workers", pool.Workers())
	return sheets, nil
}
