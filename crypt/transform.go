package crypt

import (
	"github.com/arloliu/xcxsave/keystream"
)

// Transform encrypts or decrypts data with key starting at key position pos.
//
// The returned slice is newly allocated and has the same length as data; data is not
// modified. The first KeyInfoSize bytes are copied unchanged. Positions beyond 511
// wrap modulo 512.
func Transform(data []byte, key keystream.Key, pos KeyPosition) []byte {
	out := make([]byte, len(data))
	TransformInto(out, data, key, pos)

	return out
}

// TransformInto is Transform writing into dst, which must be at least len(src)
// bytes. dst and src may be the same slice.
func TransformInto(dst, src []byte, key keystream.Key, pos KeyPosition) {
	n := copy(dst, src[:min(len(src), KeyInfoSize)])
	if n < KeyInfoSize {
		return
	}

	p := int(pos) % keystream.KeySize
	payload := src[KeyInfoSize:]
	out := dst[KeyInfoSize : KeyInfoSize+len(payload)]
	for i, b := range payload {
		out[i] = b ^ byte(i) ^ key[p] ^ 0xFF
		p++
		if p == keystream.KeySize {
			p = 0
		}
	}
}
