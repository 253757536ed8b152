// Package equality verifies the ballot equality proof (spec §4.6): a
// Schnorr-style proof that a ballot's aggregate ciphertext opens to the same
// secret under both generators, i.e. the ballot encodes exactly one unit of
// its declared weight across all of its options.
//
// Structurally this mirrors the two-equation Schnorr check in
// vocdoni-davinci-node/crypto/elgamal/proof.go's VerifyDecryptionProof, with
// the equations themselves taken from
// original_source/seev_verifier_lib/verifier_lib.py's ballots_proof.
package equality

import (
	"math/big"

	"github.com/global-initiative/SEEV-verifier/crypto/challenge"
	"github.com/global-initiative/SEEV-verifier/crypto/curve"
)

// Proof holds a single ballot's equality ZKP fields, named after spec §3's
// EqualityZKP entity.
type Proof struct {
	S           *big.Int // result
	Commitment1 *curve.Point
	Commitment2 *curve.Point
}

// Verify checks proof against the ballot's per-option (R, Z) ciphertext
// pairs, weight, and the election's generators.
func Verify(electionID, ballotID, weight *big.Int, g1, g2 *curve.Point, rs, zs []*curve.Point, proof Proof) bool {
	if len(rs) == 0 || len(rs) != len(zs) {
		return false
	}

	rSum := curve.New().Set(rs[0])
	zSum := curve.New().Set(zs[0])
	for i := 1; i < len(rs); i++ {
		rSum.Add(rSum, rs[i])
		zSum.Add(zSum, zs[i])
	}

	c := challenge.BallotEquality(electionID, ballotID, g1, g2, proof.Commitment1, proof.Commitment2)

	x := curve.New().Add(zSum, curve.New().Neg(curve.New().ScalarMult(g1, weight)))

	left1 := curve.New().ScalarMult(g1, proof.S)
	right1 := curve.New().Add(proof.Commitment1, curve.New().Neg(curve.New().ScalarMult(x, c)))
	if !left1.Equal(right1) {
		return false
	}

	left2 := curve.New().ScalarMult(g2, proof.S)
	right2 := curve.New().Add(proof.Commitment2, curve.New().Neg(curve.New().ScalarMult(rSum, c)))
	return left2.Equal(right2)
}
