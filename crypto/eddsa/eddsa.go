// Package eddsa verifies the detached "EdDSA-style" signatures DRE-IP stage
// one data carries.
//
// "EdDSA over NIST P-256" (spec §4.3) names the deterministic Schnorr-style
// scheme the producing system implements — per original_source/'s
// verify_signature, a PyCryptodome EdDSA helper applied to a Weierstrass
// (NIST-256) key. Edwards-curve EdDSA (RFC 8032) has no P-256 instantiation,
// so what that helper actually performs is deterministic ECDSA (RFC
// 6979-style nonce derivation). Standard ECDSA verification does not depend
// on how the signer derived its nonce, so crypto/ecdsa.Verify is the correct
// — and only needed — verification primitive here; nonce determinism matters
// only to the signer, which is out of scope (spec Non-goal: producing
// ballots).
package eddsa

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"math/big"

	"github.com/global-initiative/SEEV-verifier/crypto/curve"
)

// SignatureLength is the size in bytes of a raw r||s signature over P-256.
const SignatureLength = 64

// Verify reports whether sig is a valid signature of message under pubKey.
// It returns false on any structural or cryptographic mismatch (malformed
// signature length, out-of-range r/s, or a failed ECDSA check) — per spec
// §4.3, only an unparseable public key is a fatal condition, and that is
// caught earlier during transcript ingestion, not here.
func Verify(message, sig []byte, pubKey *curve.Point) bool {
	if len(sig) != SignatureLength {
		return false
	}
	if pubKey == nil || !pubKey.Valid() {
		return false
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if r.Sign() == 0 || s.Sign() == 0 {
		return false
	}
	if r.Cmp(curve.Order()) >= 0 || s.Cmp(curve.Order()) >= 0 {
		return false
	}

	digest := sha256.Sum256(message)
	key := &ecdsa.PublicKey{Curve: curve.P256(), X: pubKey.X, Y: pubKey.Y}
	return ecdsa.Verify(key, digest[:], r, s)
}
