package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

var errInput = errors.New("reading standard input")

// acquireInput returns the text to convert: the data argument when one was
// given, otherwise all of stdin through end-of-stream.
func acquireInput(cfg *invocationConfig, stdin io.Reader) (string, error) {
	if cfg.hasData {
		logger.Info("input acquired",
			zap.String("source", "argument"), zap.Int("bytes", len(cfg.data)))
		return cfg.data, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInput, err)
	}
	logger.Info("input acquired",
		zap.String("source", "stdin"), zap.Int("bytes", len(b)))
	return string(b), nil
}

// stripSpace removes SPC, TAB, LF and CR anywhere in the string.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
