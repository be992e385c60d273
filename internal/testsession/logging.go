package testsession

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}
