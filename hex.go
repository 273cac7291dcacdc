package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var errHexDecode = errors.New("invalid hex input")

// decodeHex parses hex text into bytes. Whitespace is removed anywhere, one
// leading 0x or 0X is stripped, digits may be either case.
func decodeHex(s string) ([]byte, error) {
	s = stripSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	logger.Debug("hex input normalized", zap.Int("digits", len(s)))

	if s == "" {
		return nil, fmt.Errorf("%w: empty input", errHexDecode)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		var inv hex.InvalidByteError
		switch {
		case errors.As(err, &inv):
			return nil, fmt.Errorf("%w: invalid character %q", errHexDecode, rune(inv))
		case errors.Is(err, hex.ErrLength):
			return nil, fmt.Errorf("%w: odd number of digits (%d)", errHexDecode, len(s))
		default:
			return nil, fmt.Errorf("%w: %v", errHexDecode, err)
		}
	}
	return b, nil
}

// encodeHex renders bytes as hex pairs, lowercase unless upper is set.
func encodeHex(b []byte, upper bool) string {
	s := hex.EncodeToString(b)
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}
