// Package serialize decodes the wire strings a bulletin-board transcript
// uses for elliptic-curve points, public keys, and base64 signatures.
package serialize

import (
	"crypto/elliptic"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/global-initiative/SEEV-verifier/crypto/curve"
)

// PointFromString decodes a SEC1-encoded elliptic curve point (compressed,
// 0x02/0x03 prefix, or uncompressed, 0x04 prefix) from its hex wire
// representation. A leading "0x" is tolerated. This mirrors the
// EccPointSerialisationUtils format referenced by
// original_source/seev_verifier_lib/verifier_lib.py: the producing system
// serializes points as SEC1 byte strings, hex-encoded for JSON transport.
func PointFromString(s string) (*curve.Point, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("decoding point %q: %w", s, err)
	}
	return PointFromBytes(raw)
}

// PointFromBytes decodes a SEC1-encoded point from raw bytes.
func PointFromBytes(raw []byte) (*curve.Point, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty point encoding")
	}

	switch raw[0] {
	case 0x02, 0x03:
		px, py := elliptic.UnmarshalCompressed(curve.P256(), raw)
		if px == nil {
			return nil, fmt.Errorf("invalid compressed point encoding")
		}
		return (&curve.Point{}).SetAffine(px, py), nil
	case 0x04:
		px, py := elliptic.Unmarshal(curve.P256(), raw) //nolint:staticcheck // wire format is SEC1 uncompressed, Unmarshal is the matching decoder
		if px == nil {
			return nil, fmt.Errorf("invalid uncompressed point encoding")
		}
		return (&curve.Point{}).SetAffine(px, py), nil
	default:
		return nil, fmt.Errorf("unrecognized point encoding prefix 0x%02x", raw[0])
	}
}

// PublicKeyFromString decodes the election's public key, which is wire-compatible
// with any other curve point.
func PublicKeyFromString(s string) (*curve.Point, error) {
	pk, err := PointFromString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	return pk, nil
}

// SignatureFromBase64 decodes a detached signature, which is transported as
// standard base64 (spec §4.2/§4.3).
func SignatureFromBase64(s string) ([]byte, error) {
	sig, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 signature: %w", err)
	}
	return sig, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
