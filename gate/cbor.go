package gate

import (
	"bytes"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// decMode bounds the structural check so malformed or adversarial input
// terminates instead of exhausting the process. The limits are far above
// anything a legitimate data value needs.
var decMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		MaxNestedLevels:  64,
		MaxArrayElements: 1 << 20,
		MaxMapPairs:      1 << 20,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// validateCBOR performs an exhaustive well-formedness parse of payload as a
// stream of zero or more top-level CBOR items. The decoded values are
// discarded; only decodability matters.
//
// An empty payload is a valid zero-item stream. A clean io.EOF ends the
// stream; any other error, including io.ErrUnexpectedEOF mid-item, is a
// structural failure.
func validateCBOR(payload []byte) error {
	dec := decMode.NewDecoder(bytes.NewReader(payload))
	for {
		switch err := dec.Skip(); err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}
