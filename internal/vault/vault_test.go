package vault

import (
	"errors"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{Issuer: "GitHub", Label: "work", Secret: "JBSWY3DPEHPK3PXP"},
		{Issuer: "DigitalOcean", Label: "ops", Secret: "JBSWY3DPEHPK3PXP"},
		{Issuer: "GitLab", Label: "personal", Secret: "JBSWY3DPEHPK3PXP"},
	}
}

func TestNewStoreNormalizesRecords(t *testing.T) {
	s := NewStore("", nil, []Record{{Label: "x", Secret: "jbswy3dp ehpk3pxp"}})
	rec := s.Elements()[0]
	if rec.Type != TypeTOTP || rec.Digits != 6 || rec.Period != 30 || rec.Algorithm != "SHA1" {
		t.Fatalf("expected defaults applied, got %#v", rec)
	}
	if rec.Secret != "JBSWY3DPEHPK3PXP" {
		t.Fatalf("expected secret uppercased without spaces, got %q", rec.Secret)
	}
}

func TestAddMarksDirtyAndBumpsGeneration(t *testing.T) {
	s := NewStore("", nil, nil)
	if s.Dirty() {
		t.Fatalf("fresh store must not be dirty")
	}
	gen := s.Generation()
	if err := s.Add(Record{Label: "x", Secret: "JBSWY3DPEHPK3PXP"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !s.Dirty() || s.Generation() != gen+1 || s.Len() != 1 {
		t.Fatalf("expected dirty store with one record, dirty=%v gen=%d len=%d", s.Dirty(), s.Generation(), s.Len())
	}
}

func TestAddRejectsInvalidRecord(t *testing.T) {
	s := NewStore("", nil, nil)
	err := s.Add(Record{})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	if s.Dirty() || s.Len() != 0 {
		t.Fatalf("failed add must not change the store")
	}
}

func TestEditPreservesCounter(t *testing.T) {
	records := testRecords()
	records[0].Type = TypeHOTP
	records[0].Counter = 7
	s := NewStore("", nil, records)

	edited := s.Elements()[0]
	edited.Issuer = "GitHub Enterprise"
	edited.Counter = 0
	if err := s.Edit(0, edited); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got := s.Elements()[0]
	if got.Issuer != "GitHub Enterprise" {
		t.Fatalf("expected issuer updated, got %q", got.Issuer)
	}
	if got.Counter != 7 {
		t.Fatalf("expected counter preserved, got %d", got.Counter)
	}
}

func TestEditOutOfRange(t *testing.T) {
	s := NewStore("", nil, testRecords())
	if err := s.Edit(3, s.Elements()[0]); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if s.Dirty() {
		t.Fatalf("failed edit must not mark the store dirty")
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	s := NewStore("", nil, testRecords())
	if err := s.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
	issuers := []string{s.Elements()[0].Issuer, s.Elements()[1].Issuer}
	if issuers[0] != "GitHub" || issuers[1] != "GitLab" {
		t.Fatalf("expected middle record removed, got %v", issuers)
	}
	if !s.Dirty() {
		t.Fatalf("expected dirty store after delete")
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	s := NewStore("", nil, testRecords())
	if err := s.Delete(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.Delete(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestCounterFloorAtZero(t *testing.T) {
	records := testRecords()
	records[0].Type = TypeHOTP
	s := NewStore("", nil, records)

	if err := s.DecrementCounter(0); err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if got := s.Elements()[0].Counter; got != 0 {
		t.Fatalf("expected counter pinned at 0, got %d", got)
	}
	if s.Dirty() {
		t.Fatalf("a no-op decrement must not mark the store dirty")
	}

	if err := s.IncrementCounter(0); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := s.IncrementCounter(0); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := s.DecrementCounter(0); err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if got := s.Elements()[0].Counter; got != 1 {
		t.Fatalf("expected counter 1, got %d", got)
	}
}

func TestElementsIsACopy(t *testing.T) {
	s := NewStore("", nil, testRecords())
	snapshot := s.Elements()
	snapshot[0].Issuer = "mutated"
	if s.Elements()[0].Issuer != "GitHub" {
		t.Fatalf("expected store insulated from snapshot mutation")
	}
}
