// Package gate validates that the data fields of ontology entities carry a
// multicodec-tagged serialization format (CBOR, JSON, ...) and that the tagged
// payload actually decodes under that format.
//
// Validation is a pure predicate with a structured reason: it never mutates
// the entity, retains nothing, and the first failing field aborts the entity.
//
// Currently only CBOR payloads are structurally checked; any other tagged
// codec fails with KindUnsupportedCodec.
package gate

import (
	"fmt"

	"github.com/multiformats/go-multicodec"

	"ontograph.dev/datagate/entity"
	"ontograph.dev/datagate/envelope"
)

// Validate checks every data field of e. It returns nil when e carries no
// data fields, when optional fields are absent, and when every present field
// is a well-formed envelope around a decodable payload.
//
// Absence means a nil slice. A present-but-empty field is validated and fails
// envelope parsing, since there is no empty-is-valid rule in the format.
func Validate(e entity.Entity) error {
	for _, field := range dataFields(e) {
		if err := validateField(field); err != nil {
			return err
		}
	}
	return nil
}

// dataFields is the per-variant lookup of fields holding serialized data.
// It must stay total over the entity variant set: a new data-carrying variant
// that is not listed here silently escapes validation.
func dataFields(e entity.Entity) [][]byte {
	switch e := e.(type) {
	case *entity.Annotation:
		// Value is mandatory; nil is validated (and rejected) like any bytes.
		return [][]byte{e.Value}
	case *entity.AnnotationAssertion:
		if e.Value != nil {
			return [][]byte{e.Value}
		}
	case *entity.NegativeAnnotationAssertion:
		if e.Value != nil {
			return [][]byte{e.Value}
		}
	case *entity.DataPropertyAssertion:
		if e.Target != nil {
			return [][]byte{e.Target}
		}
	case *entity.NegativeDataPropertyAssertion:
		if e.Target != nil {
			return [][]byte{e.Target}
		}
	}
	return nil
}

func validateField(data []byte) error {
	code, payload, err := envelope.Split(data)
	if err != nil {
		return &Error{
			Kind:    KindMalformedEnvelope,
			RuleID:  "DG-ENV-001",
			Message: "cannot parse multicodec envelope",
			Cause:   err,
		}
	}
	check, ok := decoders[code]
	if !ok {
		return &Error{
			Kind:    KindUnsupportedCodec,
			RuleID:  "DG-CODEC-001",
			Codec:   code,
			Message: fmt.Sprintf("unsupported codec for data value: %v (0x%x)", code, uint64(code)),
		}
	}
	if err := check(payload); err != nil {
		return &Error{
			Kind:    KindMalformedPayload,
			RuleID:  "DG-PAYLOAD-001",
			Codec:   code,
			Message: fmt.Sprintf("undecodable %v payload", code),
			Cause:   err,
		}
	}
	return nil
}

// decoders maps supported codec identifiers to structural validators.
// Supporting a new codec is one entry here; nothing else changes.
var decoders = map[multicodec.Code]func(payload []byte) error{
	multicodec.Cbor: validateCBOR,
}
