package logger

import (
	"go.uber.org/zap"
)

// L is the application-wide sugared logger. It defaults to a no-op logger so
// packages can log before InitLogger runs (tests never call InitLogger).
var L = zap.NewNop().Sugar()

// InitLogger replaces the global logger with a production zap logger.
func InitLogger() error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	L = log.Sugar()
	return nil
}
