package main

import (
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logOnce sync.Once
	rootLog = logr.Discard()
)

// log builds the command logger on first use: JSON records on stderr,
// with -v mapped to the verbosity threshold. Without -v it discards.
func (cfg *MainConfig) log() logr.Logger {
	logOnce.Do(func() {
		if cfg.Verbose <= 0 {
			return
		}
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.Level(-cfg.Verbose)),
		)
		rootLog = zapr.NewLogger(zap.New(core))
	})
	return rootLog
}
