package config

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger. Initialized to a no-op development
// fallback so packages can log during tests without calling InitLogger.
var Logger *zap.SugaredLogger

func init() {
	l, _ := zap.NewDevelopment()
	Logger = l.Sugar()
}

// InitLogger replaces the fallback with the production configuration.
func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = l.Sugar()
}
