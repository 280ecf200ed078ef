package circle

import (
	"log/slog"
	"sync/atomic"
)

// discard is the logger in effect until SetLogger installs another one.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger routes the package's log records to l. A nil l silences the
// package again, which is also the initial state.
//
// Render and RenderGallery log summaries at [slog.LevelDebug]; SaveImage
// logs each written file at [slog.LevelInfo].
//
//	circle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// SetLogger may be called while other goroutines are rendering.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
