package amqp

import (
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type loggerBox struct{ log.Logger }

var pkgLogger atomic.Value

func init() {
	pkgLogger.Store(loggerBox{log.NewNopLogger()})
}

// SetLogger sets the logger receiving non-fatal diagnostics such as
// deprecated method construction. The default discards everything.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	pkgLogger.Store(loggerBox{l})
}

func logger() log.Logger {
	return pkgLogger.Load().(loggerBox).Logger
}

func warn(l log.Logger, keyvals ...interface{}) {
	_ = level.Warn(l).Log(keyvals...)
}
