package storage_test

import (
	"bytes"
	"testing"

	"ontograph.dev/datagate/storage"
	"ontograph.dev/datagate/storage/testkit"
)

func TestMultiCAS_ReadFallback(t *testing.T) {
	primary := testkit.NewMemCAS()
	mirror := testkit.NewMemCAS()

	want := []byte("only in the mirror")
	id, err := mirror.Put(want)
	if err != nil {
		t.Fatalf("mirror Put: %v", err)
	}

	multi := storage.MultiCAS{Adapters: []storage.CAS{primary, mirror}}
	got, err := multi.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Get bytes mismatch")
	}
	if !multi.Has(id) {
		t.Fatalf("Has: expected true via mirror")
	}
}

func TestMultiCAS_PutWritesFirstAdapterOnly(t *testing.T) {
	primary := testkit.NewMemCAS()
	mirror := testkit.NewMemCAS()
	multi := storage.MultiCAS{Adapters: []storage.CAS{primary, mirror}}

	id, err := multi.Put([]byte("written"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !primary.Has(id) {
		t.Fatalf("primary should hold the object")
	}
	if mirror.Has(id) {
		t.Fatalf("mirror should not receive writes")
	}
}

func TestMultiCAS_Empty(t *testing.T) {
	var multi storage.MultiCAS
	if _, err := multi.Put([]byte("x")); err == nil {
		t.Fatalf("Put on empty MultiCAS should fail")
	}
	id, err := storage.SumCID([]byte("x"))
	if err != nil {
		t.Fatalf("SumCID: %v", err)
	}
	if _, err := multi.Get(id); !storage.IsNotFound(err) {
		t.Fatalf("Get: want ErrNotFound, got %v", err)
	}
}
