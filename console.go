package patlib

import "go.uber.org/zap"

// Console adapts a zap logger to the evaluation log capability.
type Console struct {
	log *zap.SugaredLogger
}

// NewConsole wraps log. A nil log yields a silent console.
func NewConsole(log *zap.SugaredLogger) *Console {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Console{log: log}
}

// Log writes msg at the given severity.
func (c *Console) Log(level LogLevel, msg string) {
	switch level {
	case LevelDebug:
		c.log.Debug(msg)
	case LevelInfo:
		c.log.Info(msg)
	case LevelWarning:
		c.log.Warn(msg)
	case LevelError:
		c.log.Error(msg)
	}
}
