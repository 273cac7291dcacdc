package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	// Quiet until the -v count is known.
	logger = zap.NewNop()
}

func setLevel(l zapcore.Level, w io.Writer) {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), l)
	logger = zap.New(core)
}
