package gate

import (
	"errors"
	"testing"

	"github.com/multiformats/go-multicodec"

	"ontograph.dev/datagate/entity"
	"ontograph.dev/datagate/envelope"
)

func TestErrorTaxonomy_MalformedEnvelopeRuleID(t *testing.T) {
	err := Validate(&entity.Annotation{Property: "p", Value: []byte{0x80}})
	if err == nil {
		t.Fatalf("expected error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *gate.Error, got %T", err)
	}
	if e.Kind != KindMalformedEnvelope {
		t.Fatalf("expected KindMalformedEnvelope, got %s", e.Kind)
	}
	if e.RuleID != "DG-ENV-001" {
		t.Fatalf("expected RuleID DG-ENV-001, got %s", e.RuleID)
	}
	if e.Unwrap() == nil {
		t.Fatalf("expected underlying varint error to be wrapped")
	}
}

func TestErrorTaxonomy_UnsupportedCodecCarriesID(t *testing.T) {
	err := Validate(&entity.Annotation{Property: "p", Value: envelope.Wrap(multicodec.Protobuf, nil)})
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *gate.Error, got %T", err)
	}
	if e.Kind != KindUnsupportedCodec {
		t.Fatalf("expected KindUnsupportedCodec, got %s", e.Kind)
	}
	if e.RuleID != "DG-CODEC-001" {
		t.Fatalf("expected RuleID DG-CODEC-001, got %s", e.RuleID)
	}
	if e.Codec != multicodec.Protobuf {
		t.Fatalf("expected Codec protobuf, got %v", e.Codec)
	}
	if e.Unwrap() != nil {
		t.Fatalf("unsupported codec is terminal, not a wrapped cause")
	}
}

func TestErrorTaxonomy_MalformedPayloadWrapsDecoderError(t *testing.T) {
	err := Validate(&entity.Annotation{Property: "p", Value: envelope.Wrap(multicodec.Cbor, []byte{0x1c})})
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *gate.Error, got %T", err)
	}
	if e.Kind != KindMalformedPayload {
		t.Fatalf("expected KindMalformedPayload, got %s", e.Kind)
	}
	if e.RuleID != "DG-PAYLOAD-001" {
		t.Fatalf("expected RuleID DG-PAYLOAD-001, got %s", e.RuleID)
	}
	if e.Codec != multicodec.Cbor {
		t.Fatalf("expected Codec cbor, got %v", e.Codec)
	}
	if e.Unwrap() == nil {
		t.Fatalf("expected underlying CBOR error to be wrapped")
	}
}

func TestErrorTaxonomy_CodecHelperOnForeignError(t *testing.T) {
	if _, ok := Codec(errors.New("plain")); ok {
		t.Fatalf("Codec should report false for non-gate errors")
	}
	if IsKind(nil, KindMalformedPayload) {
		t.Fatalf("IsKind(nil) should be false")
	}
}
