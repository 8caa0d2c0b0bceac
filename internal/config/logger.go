package config

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare returns our standard logger - configured zap logger for use by the
// program. All messages go to w, which defaults to stderr. Standard output is
// left to the snapshots.
func (conf *LoggingConfig) Prepare(w io.Writer) *zap.Logger {
	if w == nil {
		w = os.Stderr
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	var lowest zapcore.Level
	switch conf.Level {
	case "normal":
		lowest = zapcore.InfoLevel
	case "debug":
		lowest = zapcore.DebugLevel
	default:
		return zap.NewNop()
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), lowest)
	return zap.New(core)
}
