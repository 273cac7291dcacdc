package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// argv can be empty under a raw execve; an empty name fails like any
	// other unknown one.
	var name string
	args := os.Args
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}
	if err := run(name, args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run is the whole pipeline: resolve mode, parse arguments, acquire input,
// decode, encode, print. It writes all error and usage text to stderr and
// returns a non-nil error when the process must exit 1. The converted token
// is the only thing ever written to stdout.
func run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	m, err := resolveMode(name)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fmt.Fprint(stderr, usageBoth)
		return err
	}

	cfg, err := parseArgs(m, args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fmt.Fprint(stderr, usageFor(m))
		return err
	}

	prepareLogLevel(cfg.verbosity, stderr)
	logger.Debug("invocation configured",
		zap.Stringer("mode", cfg.mode),
		zap.Bool("url_safe", cfg.urlSafe),
		zap.Bool("upper_hex", cfg.upperHex),
		zap.Bool("data_argument", cfg.hasData))

	out, err := convert(cfg, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return err
	}

	if _, err := fmt.Fprintln(stdout, out); err != nil {
		fmt.Fprintf(stderr, "%s: writing standard output: %v\n", name, err)
		return err
	}
	return nil
}

// convert acquires the input and runs decode then encode for the configured
// direction.
func convert(cfg *invocationConfig, stdin io.Reader) (string, error) {
	raw, err := acquireInput(cfg, stdin)
	if err != nil {
		return "", err
	}

	var out string
	switch cfg.mode {
	case modeHexToBase64:
		b, err := decodeHex(raw)
		if err != nil {
			return "", err
		}
		out = encodeBase64(b, cfg.urlSafe)
	case modeBase64ToHex:
		b, err := decodeBase64(raw)
		if err != nil {
			return "", err
		}
		out = encodeHex(b, cfg.upperHex)
	default:
		return "", fmt.Errorf("unsupported mode %v", cfg.mode)
	}

	logger.Info("conversion complete",
		zap.Stringer("mode", cfg.mode),
		zap.Int("input_bytes", len(raw)),
		zap.Int("output_chars", len(out)))
	return out, nil
}

func prepareLogLevel(verbosity int, w io.Writer) {
	switch {
	case verbosity >= 2:
		setLevel(zapcore.DebugLevel, w)
	case verbosity >= 1:
		setLevel(zapcore.InfoLevel, w)
	default:
		setLevel(zapcore.WarnLevel, w)
	}
}

const usageBoth = `usage: hexb64 [-url] [-v] [data]
       b64hex [-low|-up] [-v] [data]
`

func usageFor(m mode) string {
	if m == modeBase64ToHex {
		return `usage: b64hex [-low|-up] [-v] [data]
  -low  lowercase hex output (default)
  -up   uppercase hex output
  -v    increase diagnostic verbosity on stderr (repeatable)
  data  base64 input, classic or URL-safe alphabet; stdin is read when absent
`
	}
	return `usage: hexb64 [-url] [-v] [data]
  -url  emit URL-safe base64 (default: classic alphabet)
  -v    increase diagnostic verbosity on stderr (repeatable)
  data  hex input, 0x/0X prefix and either case allowed; stdin is read when absent
`
}
