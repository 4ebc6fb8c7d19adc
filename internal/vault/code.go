package vault

import (
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	"github.com/pquerna/otp/totp"
)

func algorithmFor(name string) otp.Algorithm {
	switch name {
	case "SHA256":
		return otp.AlgorithmSHA256
	case "SHA512":
		return otp.AlgorithmSHA512
	default:
		return otp.AlgorithmSHA1
	}
}

// CurrentCode recomputes the code for the record at index. Time-based records
// derive from the current rotation window; counter-based records derive from
// the stored counter.
func (s *Store) CurrentCode(index int) (string, error) {
	if index < 0 || index >= len(s.records) {
		return "", ErrIndexOutOfRange
	}
	r := s.records[index]
	switch r.Type {
	case TypeHOTP:
		code, err := hotp.GenerateCodeCustom(r.Secret, r.Counter, hotp.ValidateOpts{
			Digits:    otp.Digits(r.Digits),
			Algorithm: algorithmFor(r.Algorithm),
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrComputation, err)
		}
		return code, nil
	default:
		code, err := totp.GenerateCodeCustom(r.Secret, s.now(), totp.ValidateOpts{
			Period:    uint(r.Period),
			Digits:    otp.Digits(r.Digits),
			Algorithm: algorithmFor(r.Algorithm),
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrComputation, err)
		}
		return code, nil
	}
}
