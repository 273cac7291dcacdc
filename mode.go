package main

import (
	"errors"
	"fmt"
)

// The two filesystem names the binary answers to.
const (
	nameHexToBase64 = "hexb64"
	nameBase64ToHex = "b64hex"
)

type mode int

func (m mode) String() string {
	switch m {
	case modeHexToBase64:
		return "hex-to-base64"
	case modeBase64ToHex:
		return "base64-to-hex"
	default:
		return "<unknown>"
	}
}

const (
	modeHexToBase64 = mode(iota)
	modeBase64ToHex
)

var errUnknownMode = errors.New("unknown invocation name")

// resolveMode maps the name the process was started under to a conversion
// direction. The match is exact and case-sensitive.
func resolveMode(name string) (mode, error) {
	switch name {
	case nameHexToBase64:
		return modeHexToBase64, nil
	case nameBase64ToHex:
		return modeBase64ToHex, nil
	default:
		return 0, fmt.Errorf("%w %q; install a hard link or copy named %q or %q",
			errUnknownMode, name, nameHexToBase64, nameBase64ToHex)
	}
}
