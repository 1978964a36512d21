package crypto

import (
	"encoding/base64"
	"runtime"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// Wipe zeroes the provided buffer. Use it on password bytes and derived keys
// once they are no longer needed.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
