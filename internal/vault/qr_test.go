package vault

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestURITimeBased(t *testing.T) {
	s := NewStore("", nil, []Record{
		{Issuer: "GitHub", Label: "work", Secret: "JBSWY3DPEHPK3PXP"},
	})
	uri, err := s.URI(0)
	if err != nil {
		t.Fatalf("uri: %v", err)
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		t.Fatalf("parse %q: %v", uri, err)
	}
	if parsed.Scheme != "otpauth" || parsed.Host != "totp" {
		t.Fatalf("expected otpauth://totp, got %q", uri)
	}
	if got := strings.TrimPrefix(parsed.Path, "/"); got != "GitHub:work" {
		t.Fatalf("expected issuer-qualified label, got %q", got)
	}
	q := parsed.Query()
	if q.Get("secret") != "JBSWY3DPEHPK3PXP" || q.Get("issuer") != "GitHub" {
		t.Fatalf("unexpected query: %v", q)
	}
	if q.Get("period") != "30" || q.Get("counter") != "" {
		t.Fatalf("time-based uri must carry period, not counter: %v", q)
	}
}

func TestURICounterBased(t *testing.T) {
	s := NewStore("", nil, []Record{
		{Label: "standalone", Secret: "JBSWY3DPEHPK3PXP", Type: TypeHOTP, Counter: 42},
	})
	uri, err := s.URI(0)
	if err != nil {
		t.Fatalf("uri: %v", err)
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		t.Fatalf("parse %q: %v", uri, err)
	}
	if parsed.Host != "hotp" {
		t.Fatalf("expected otpauth://hotp, got %q", uri)
	}
	q := parsed.Query()
	if q.Get("counter") != "42" || q.Get("period") != "" {
		t.Fatalf("counter-based uri must carry counter, not period: %v", q)
	}
	if q.Get("issuer") != "" {
		t.Fatalf("expected no issuer param, got %v", q)
	}
}

func TestURIOutOfRange(t *testing.T) {
	s := NewStore("", nil, nil)
	if _, err := s.URI(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestVisualCodeRendersBlocks(t *testing.T) {
	s := NewStore("", nil, []Record{
		{Issuer: "GitHub", Label: "work", Secret: "JBSWY3DPEHPK3PXP"},
	})
	code, err := s.VisualCode(0)
	if err != nil {
		t.Fatalf("visual code: %v", err)
	}
	if !strings.ContainsRune(code, '█') {
		t.Fatalf("expected block cells in rendered code")
	}
	lines := strings.Split(code, "\n")
	if len(lines) < 10 {
		t.Fatalf("suspiciously small code, %d lines", len(lines))
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if len([]rune(line)) != width {
			t.Fatalf("ragged line %d: %d cells, expected %d", i, len([]rune(line)), width)
		}
	}
}
