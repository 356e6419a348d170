package storage

import (
	"github.com/ipfs/go-cid"

	"ontograph.dev/datagate/entity"
	"ontograph.dev/datagate/gate"
)

// EntityStore is the gated write path: entities are validated before they are
// encoded and persisted, so a CAS behind an EntityStore never holds an entity
// whose data fields failed the gate.
type EntityStore struct {
	CAS CAS
}

// Put validates e, encodes it, and stores the encoded bytes.
// A gate failure is returned unchanged so callers can branch on its Kind;
// nothing is written in that case.
func (s *EntityStore) Put(e entity.Entity) (cid.Cid, error) {
	if err := gate.Validate(e); err != nil {
		return cid.Undef, err
	}
	b, err := entity.Encode(e)
	if err != nil {
		return cid.Undef, err
	}
	return s.CAS.Put(b)
}

// Get loads and decodes the entity stored under id.
func (s *EntityStore) Get(id cid.Cid) (entity.Entity, error) {
	b, err := s.CAS.Get(id)
	if err != nil {
		return nil, err
	}
	return entity.Decode(b)
}

// Has reports whether an entity is stored under id.
func (s *EntityStore) Has(id cid.Cid) bool {
	return s.CAS.Has(id)
}
