package fetch

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/wippyai/remote-mount/errors"
)

// Verify checks data against a subresource-integrity string of the form
// "<alg>-<base64 digest>", where alg is sha256, sha384, or sha512.
func Verify(data []byte, integrity string) error {
	alg, encoded, ok := strings.Cut(integrity, "-")
	if !ok {
		return errors.IntegrityMismatch("", "malformed integrity string "+integrity)
	}

	want, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return errors.IntegrityMismatch("", "integrity digest is not valid base64")
	}

	var got []byte
	switch alg {
	case "sha256":
		sum := sha256.Sum256(data)
		got = sum[:]
	case "sha384":
		sum := sha512.Sum384(data)
		got = sum[:]
	case "sha512":
		sum := sha512.Sum512(data)
		got = sum[:]
	default:
		return errors.IntegrityMismatch("", "unsupported integrity algorithm "+alg)
	}

	if subtle.ConstantTimeCompare(got, want) != 1 {
		return errors.IntegrityMismatch("", "payload digest does not match "+alg+" integrity")
	}
	return nil
}

// Integrity computes the subresource-integrity string for data using the
// given algorithm. Useful for hosts pinning bundles they publish.
func Integrity(alg string, data []byte) (string, error) {
	var sum []byte
	switch alg {
	case "sha256":
		s := sha256.Sum256(data)
		sum = s[:]
	case "sha384":
		s := sha512.Sum384(data)
		sum = s[:]
	case "sha512":
		s := sha512.Sum512(data)
		sum = s[:]
	default:
		return "", errors.InvalidInput(errors.PhaseFetch, "unsupported integrity algorithm "+alg)
	}
	return alg + "-" + base64.StdEncoding.EncodeToString(sum), nil
}
