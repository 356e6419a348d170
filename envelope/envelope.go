// Package envelope reads and writes multicodec-tagged byte strings.
//
// An envelope is an unsigned varint codec identifier from the multicodec
// registry (https://github.com/multiformats/multicodec) followed by the raw
// payload in that codec. Split does not judge whether the codec is supported;
// it only separates tag from payload.
package envelope

import (
	"fmt"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
)

// Split parses the leading multicodec tag and returns the codec identifier
// and the remaining payload bytes.
//
// The error distinguishes a malformed tag (truncated, overlong, non-minimal
// varint) from nothing else: an unknown-but-well-formed codec id parses fine.
func Split(data []byte) (multicodec.Code, []byte, error) {
	code, n, err := varint.FromUvarint(data)
	if err != nil {
		return 0, nil, fmt.Errorf("envelope: invalid multicodec tag: %w", err)
	}
	return multicodec.Code(code), data[n:], nil
}

// Wrap prefixes payload with the varint encoding of code. The input slice is
// not modified.
func Wrap(code multicodec.Code, payload []byte) []byte {
	tag := varint.ToUvarint(uint64(code))
	out := make([]byte, 0, len(tag)+len(payload))
	out = append(out, tag...)
	return append(out, payload...)
}
