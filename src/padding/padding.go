// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package padding implements the ISO/IEC 7816-4 style padding (marker byte
// 0x80 followed by 0x00 filler) that ECB and CBC use. This is not PKCS#7.
//
// Block always appends a full marker block even when the plaintext already
// ends on a block boundary; otherwise a message whose last bytes happen to
// be 0x80 0x00* would be indistinguishable from padding on decrypt.
package padding

import "github.com/kaisiemek/aesgo/src/consts"

// Block appends the 0x80 marker and fills with 0x00 up to the next block
// boundary. A full marker block is appended even when len(data) is already
// a multiple of BLOCK_SIZE.
func Block(data []byte) []byte {
	padLen := consts.BLOCK_SIZE - len(data)%consts.BLOCK_SIZE

	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	padded[len(data)] = consts.PADDING_MARKER

	return padded
}

// Unblock walks the final block backwards from byte 15, skipping 0x00
// filler bytes until it finds the 0x80 marker. Everything before the
// marker is returned as plaintext. ok is false if the trailing bytes never
// resolve to a marker (InvalidPadding in the caller's terms).
func Unblock(padded []byte) (data []byte, ok bool) {
	for i := len(padded) - 1; i >= 0; i-- {
		switch padded[i] {
		case consts.PADDING_BYTE:
			continue
		case consts.PADDING_MARKER:
			return padded[:i], true
		default:
			return nil, false
		}
	}

	return nil, false
}
