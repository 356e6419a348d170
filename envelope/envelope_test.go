package envelope

import (
	"bytes"
	"testing"

	"github.com/multiformats/go-multicodec"
)

func TestSplit_SingleByteTag(t *testing.T) {
	code, payload, err := Split([]byte{0x51, 0xf5})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if code != multicodec.Cbor {
		t.Fatalf("code: got %v want %v", code, multicodec.Cbor)
	}
	if !bytes.Equal(payload, []byte{0xf5}) {
		t.Fatalf("payload: got %x want f5", payload)
	}
}

func TestSplit_MultiByteTag(t *testing.T) {
	// 0x0200 (json) encodes as the two-byte varint 80 04.
	code, payload, err := Split([]byte{0x80, 0x04, 0x7b, 0x7d})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if code != multicodec.Json {
		t.Fatalf("code: got %v want %v", code, multicodec.Json)
	}
	if !bytes.Equal(payload, []byte("{}")) {
		t.Fatalf("payload: got %x", payload)
	}
}

func TestSplit_EmptyPayloadIsFine(t *testing.T) {
	code, payload, err := Split([]byte{0x51})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if code != multicodec.Cbor {
		t.Fatalf("code: got %v", code)
	}
	if len(payload) != 0 {
		t.Fatalf("payload: got %x want empty", payload)
	}
}

func TestSplit_MalformedTags(t *testing.T) {
	cases := map[string][]byte{
		"empty input":        {},
		"truncated varint":   {0x80},
		"non-minimal varint": {0x80, 0x00},
		"overlong varint":    {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := Split(in); err == nil {
				t.Fatalf("Split(%x): expected error", in)
			}
		})
	}
}

func TestWrap_RoundTrip(t *testing.T) {
	for _, code := range []multicodec.Code{multicodec.Cbor, multicodec.Protobuf, multicodec.Json} {
		payload := []byte{0xde, 0xad, 0xbe, 0xef}
		wrapped := Wrap(code, payload)
		gotCode, gotPayload, err := Split(wrapped)
		if err != nil {
			t.Fatalf("Split(Wrap(%v)): %v", code, err)
		}
		if gotCode != code {
			t.Fatalf("code: got %v want %v", gotCode, code)
		}
		if !bytes.Equal(gotPayload, payload) {
			t.Fatalf("payload: got %x want %x", gotPayload, payload)
		}
	}
}

func TestWrap_DoesNotAliasPayload(t *testing.T) {
	payload := []byte{0x01, 0x02}
	wrapped := Wrap(multicodec.Cbor, payload)
	wrapped[1] = 0xff
	if payload[0] != 0x01 {
		t.Fatalf("Wrap aliased its input")
	}
}
