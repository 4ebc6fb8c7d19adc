package vault

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/boombuler/barcode/qr"
)

// URI renders the otpauth:// provisioning URI for the record at index.
func (s *Store) URI(index int) (string, error) {
	if index < 0 || index >= len(s.records) {
		return "", ErrIndexOutOfRange
	}
	r := s.records[index]
	label := r.Label
	if r.Issuer != "" {
		label = r.Issuer + ":" + r.Label
	}
	q := url.Values{}
	q.Set("secret", r.Secret)
	q.Set("algorithm", r.Algorithm)
	q.Set("digits", strconv.Itoa(r.Digits))
	if r.Issuer != "" {
		q.Set("issuer", r.Issuer)
	}
	switch r.Type {
	case TypeHOTP:
		q.Set("counter", strconv.FormatUint(r.Counter, 10))
	default:
		q.Set("period", strconv.Itoa(r.Period))
	}
	u := url.URL{
		Scheme:   "otpauth",
		Host:     string(r.Type),
		Path:     "/" + label,
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}

// VisualCode renders the record's provisioning URI as a QR code built from
// terminal half-block cells, two modules per text row.
func (s *Store) VisualCode(index int) (string, error) {
	uri, err := s.URI(index)
	if err != nil {
		return "", err
	}
	code, err := qr.Encode(uri, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	bounds := code.Bounds()
	dark := func(x, y int) bool {
		if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
			return false
		}
		r, g, b, _ := code.At(x, y).RGBA()
		return r == 0 && g == 0 && b == 0
	}
	// One quiet-zone module on every side so scanners can lock on.
	var sb strings.Builder
	for y := bounds.Min.Y - 2; y < bounds.Max.Y+2; y += 2 {
		for x := bounds.Min.X - 2; x < bounds.Max.X+2; x++ {
			top := dark(x, y)
			bottom := dark(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
