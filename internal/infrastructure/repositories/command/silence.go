package command

import (
	"io"
	"sync"

	logger "github.com/sirupsen/logrus"
)

var silenceMu sync.Mutex //nolint:gochecknoglobals // guards the shared logger output

// Silence runs fn with all log output discarded and restores the previous
// output once fn returns, panics included.
func Silence(fn func() error) error {
	silenceMu.Lock()
	defer silenceMu.Unlock()

	std := logger.StandardLogger()
	previous := std.Out
	std.SetOutput(io.Discard)
	defer std.SetOutput(previous)

	return fn()
}
