package vault

import (
	"errors"
	"testing"
	"time"
)

// rfcSecret is the base32 encoding of "12345678901234567890", the shared
// secret used by the RFC 4226 and RFC 6238 test vectors.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestCurrentCodeTOTPVector(t *testing.T) {
	s := NewStore("", nil, []Record{
		{Label: "rfc", Secret: rfcSecret},
	})
	s.now = func() time.Time { return time.Unix(59, 0) }

	code, err := s.CurrentCode(0)
	if err != nil {
		t.Fatalf("current code: %v", err)
	}
	if code != "287082" {
		t.Fatalf("expected RFC 6238 vector 287082, got %q", code)
	}
}

func TestCurrentCodeHOTPVectors(t *testing.T) {
	s := NewStore("", nil, []Record{
		{Label: "rfc", Secret: rfcSecret, Type: TypeHOTP},
	})
	want := []string{"755224", "287082", "359152"}
	for counter, expected := range want {
		s.records[0].Counter = uint64(counter)
		code, err := s.CurrentCode(0)
		if err != nil {
			t.Fatalf("counter %d: %v", counter, err)
		}
		if code != expected {
			t.Fatalf("counter %d: expected %q, got %q", counter, expected, code)
		}
	}
}

func TestCurrentCodeStableWithinWindow(t *testing.T) {
	s := NewStore("", nil, []Record{{Label: "x", Secret: rfcSecret}})
	s.now = func() time.Time { return time.Unix(1000, 0) }
	first, err := s.CurrentCode(0)
	if err != nil {
		t.Fatalf("current code: %v", err)
	}
	s.now = func() time.Time { return time.Unix(1019, 0) }
	second, err := s.CurrentCode(0)
	if err != nil {
		t.Fatalf("current code: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable code within one window, got %q then %q", first, second)
	}

	s.now = func() time.Time { return time.Unix(1030, 0) }
	third, err := s.CurrentCode(0)
	if err != nil {
		t.Fatalf("current code: %v", err)
	}
	if third == first {
		t.Fatalf("expected a fresh code after the window rotated")
	}
}

func TestCurrentCodeBadSecret(t *testing.T) {
	s := NewStore("", nil, []Record{{Label: "x", Secret: "NOT!BASE32!"}})
	_, err := s.CurrentCode(0)
	if !errors.Is(err, ErrComputation) {
		t.Fatalf("expected ErrComputation, got %v", err)
	}
}

func TestCurrentCodeIndexOutOfRange(t *testing.T) {
	s := NewStore("", nil, nil)
	if _, err := s.CurrentCode(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}
