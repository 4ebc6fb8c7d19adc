// Package vault owns the encrypted credential records and their derived
// one-time codes. The UI never mutates records directly; every change goes
// through the Store mutation API, which marks the store dirty and bumps a
// generation counter used to invalidate derived views.
package vault

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/totem/internal/logging/events"
)

var (
	// ErrIndexOutOfRange indicates a mutation targeted a stale index.
	ErrIndexOutOfRange = errors.New("record index out of range")
	// ErrComputation indicates code generation failed, typically because the
	// secret material is not valid base32.
	ErrComputation = errors.New("unable to compute code")
	// ErrInvalidRecord indicates a record failed validation on add/edit.
	ErrInvalidRecord = errors.New("invalid record")
)

// Type discriminates time-based from counter-based records.
type Type string

const (
	TypeTOTP Type = "totp"
	TypeHOTP Type = "hotp"
)

// Record is a single OTP credential. Secret material is opaque to callers;
// codes are derived on demand via Store.CurrentCode.
type Record struct {
	Issuer    string `json:"issuer"`
	Label     string `json:"label"`
	Secret    string `json:"secret"`
	Type      Type   `json:"type"`
	Algorithm string `json:"algorithm,omitempty"`
	Digits    int    `json:"digits,omitempty"`
	Period    int    `json:"period,omitempty"`
	Counter   uint64 `json:"counter,omitempty"`
}

func (r *Record) normalize() {
	if r.Type == "" {
		r.Type = TypeTOTP
	}
	if r.Digits == 0 {
		r.Digits = 6
	}
	if r.Period == 0 {
		r.Period = 30
	}
	if r.Algorithm == "" {
		r.Algorithm = "SHA1"
	}
	r.Secret = strings.ToUpper(strings.ReplaceAll(r.Secret, " ", ""))
}

func (r Record) validate() error {
	if strings.TrimSpace(r.Label) == "" {
		return fmt.Errorf("%w: label must not be empty", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidRecord)
	}
	if r.Type != TypeTOTP && r.Type != TypeHOTP {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, r.Type)
	}
	return nil
}

// Store holds the ordered credential records for a session. It is exclusively
// owned by the UI controller; no concurrent writers exist.
type Store struct {
	path       string
	password   []byte
	records    []Record
	dirty      bool
	generation uint64
	now        func() time.Time
}

// NewStore builds an in-memory store over the given records. Used directly by
// tests; production code goes through Open.
func NewStore(path string, password []byte, records []Record) *Store {
	s := &Store{
		path:     path,
		password: append([]byte(nil), password...),
		records:  append([]Record(nil), records...),
		now:      time.Now,
	}
	for i := range s.records {
		s.records[i].normalize()
	}
	return s
}

// Elements returns a read-only snapshot of the records in store order.
func (s *Store) Elements() []Record {
	return append([]Record(nil), s.records...)
}

// Len reports the number of records.
func (s *Store) Len() int { return len(s.records) }

// Dirty reports whether in-memory state diverges from the last persisted state.
func (s *Store) Dirty() bool { return s.dirty }

// Generation increments on every successful mutation; derived views key their
// caches on it.
func (s *Store) Generation() uint64 { return s.generation }

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

func (s *Store) touch() {
	s.dirty = true
	s.generation++
}

// Add appends a record after validation.
func (s *Store) Add(r Record) error {
	r.normalize()
	if err := r.validate(); err != nil {
		events.Store.Error("add", err)
		return err
	}
	s.records = append(s.records, r)
	s.touch()
	events.Store.Added(r.Issuer, r.Label)
	return nil
}

// Edit replaces the record at index. The counter of the existing record is
// preserved unless the replacement sets one explicitly.
func (s *Store) Edit(index int, r Record) error {
	if index < 0 || index >= len(s.records) {
		events.Store.Error("edit", ErrIndexOutOfRange)
		return ErrIndexOutOfRange
	}
	r.normalize()
	if err := r.validate(); err != nil {
		events.Store.Error("edit", err)
		return err
	}
	if r.Counter == 0 {
		r.Counter = s.records[index].Counter
	}
	s.records[index] = r
	s.touch()
	events.Store.Edited(index)
	return nil
}

// Delete removes the record at index.
func (s *Store) Delete(index int) error {
	if index < 0 || index >= len(s.records) {
		events.Store.Error("delete", ErrIndexOutOfRange)
		return ErrIndexOutOfRange
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	s.touch()
	events.Store.Deleted(index)
	return nil
}

// IncrementCounter advances the HOTP counter of the record at index.
func (s *Store) IncrementCounter(index int) error {
	if index < 0 || index >= len(s.records) {
		events.Store.Error("counter", ErrIndexOutOfRange)
		return ErrIndexOutOfRange
	}
	s.records[index].Counter++
	s.touch()
	events.Store.Counter(index, s.records[index].Counter)
	return nil
}

// DecrementCounter winds the HOTP counter of the record at index back one
// step. Counters never go below zero.
func (s *Store) DecrementCounter(index int) error {
	if index < 0 || index >= len(s.records) {
		events.Store.Error("counter", ErrIndexOutOfRange)
		return ErrIndexOutOfRange
	}
	if s.records[index].Counter > 0 {
		s.records[index].Counter--
		s.touch()
	}
	events.Store.Counter(index, s.records[index].Counter)
	return nil
}
