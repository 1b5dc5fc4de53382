package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

func Init() {
	LogWriter = os.Stdout

	handler := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: log.LevelInfo})

	logger := log.New(&ContextHandler{handler})
	log.SetDefault(logger)
}
