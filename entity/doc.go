// Package entity defines the closed set of ontology statement variants and
// their stable JSON boundary encoding.
//
// Entities reference each other by CID string. Data-carrying variants hold a
// raw byte field containing a multicodec-tagged serialized value; whether that
// field is well formed is the gate package's concern, not this package's.
//
// JSON note: byte fields are encoded as base64 by encoding/json.
package entity
