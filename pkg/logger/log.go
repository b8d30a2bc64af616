package logger

import "go.uber.org/zap"

func NewLogger(env string) *zap.Logger {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	if env == "production" {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            level,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}
