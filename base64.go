package main

import (
	"encoding/base64"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var errBase64Decode = errors.New("invalid base64 input")

// Decode attempts, in trial order. The URL-safe alphabet is accepted with
// and without padding; the classic alphabet requires canonical padding.
var base64Alphabets = []struct {
	name string
	enc  *base64.Encoding
}{
	{"classic", base64.StdEncoding},
	{"url-safe", base64.URLEncoding},
	{"url-safe unpadded", base64.RawURLEncoding},
}

// decodeBase64 parses base64 text into bytes, inferring the alphabet by
// trial: classic first, then URL-safe. The returned error carries the last
// attempt's reason; earlier attempts are visible at debug verbosity.
func decodeBase64(s string) ([]byte, error) {
	s = stripSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", errBase64Decode)
	}

	var lastErr error
	for _, a := range base64Alphabets {
		b, err := a.enc.DecodeString(s)
		if err == nil {
			logger.Debug("base64 alphabet matched", zap.String("alphabet", a.name))
			return b, nil
		}
		logger.Debug("base64 decode attempt failed",
			zap.String("alphabet", a.name), zap.Error(err))
		lastErr = err
	}
	return nil, fmt.Errorf("%w: not valid as classic or URL-safe base64: %v",
		errBase64Decode, lastErr)
}

// encodeBase64 renders bytes using the classic alphabet, or the URL-safe one
// when urlSafe is set. The padding rule is the same for both.
func encodeBase64(b []byte, urlSafe bool) string {
	if urlSafe {
		return base64.URLEncoding.EncodeToString(b)
	}
	return base64.StdEncoding.EncodeToString(b)
}
