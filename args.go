package main

import (
	"errors"
	"fmt"
	"strings"
)

var errArgument = errors.New("invalid command line")

// invocationConfig is everything one run needs beyond the input itself.
// It is computed once from the invocation name and argv and never changes.
type invocationConfig struct {
	mode      mode
	urlSafe   bool   // hexb64 -url: URL-safe output alphabet
	upperHex  bool   // b64hex -up: uppercase hex digits
	verbosity int    // -v occurrences
	data      string // positional data argument
	hasData   bool   // false means read stdin
}

// parseArgs scans the tokens after the program name. Flags may appear on
// either side of the single optional data token; which flags are accepted
// depends on the mode.
func parseArgs(m mode, args []string) (*invocationConfig, error) {
	cfg := &invocationConfig{mode: m}
	var sawLow, sawUp bool
	for _, arg := range args {
		switch arg {
		case "-url":
			if m != modeHexToBase64 {
				return nil, fmt.Errorf("%w: flag -url is only valid when invoked as %s",
					errArgument, nameHexToBase64)
			}
			cfg.urlSafe = true
		case "-low", "-up":
			if m != modeBase64ToHex {
				return nil, fmt.Errorf("%w: flag %s is only valid when invoked as %s",
					errArgument, arg, nameBase64ToHex)
			}
			if arg == "-up" {
				sawUp = true
				cfg.upperHex = true
			} else {
				sawLow = true
			}
			if sawLow && sawUp {
				return nil, fmt.Errorf("%w: -low and -up are mutually exclusive", errArgument)
			}
		case "-v":
			cfg.verbosity++
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("%w: unknown flag %q", errArgument, arg)
			}
			if cfg.hasData {
				return nil, fmt.Errorf("%w: unexpected extra argument %q", errArgument, arg)
			}
			cfg.data = arg
			cfg.hasData = true
		}
	}
	return cfg, nil
}
