package wld

import (
	"github.com/charmbracelet/log"

	"github.com/serioustools/wld/format"
)

// CharmSink adapts a charmbracelet logger into a parse log sink. Success
// events render at info level; the sink never affects parse control flow.
func CharmSink(logger *log.Logger) format.LogFunc {
	return func(level format.Level, msg string) {
		switch level {
		case format.LevelWarn:
			logger.Warn(msg)
		case format.LevelError:
			logger.Error(msg)
		default:
			logger.Info(msg)
		}
	}
}
