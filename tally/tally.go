// Package tally reconstructs and verifies each option's declared tally
// against the aggregate ciphertext of its confirmed ballots (spec §4.7).
//
// Grounded on original_source/seev_verifier_lib/verifier_lib.py's
// tally_check/load_tally_data, including the per-option grouping of
// confirmed (state == 2) ballots by option_id that the loader performs
// before this check ever runs (see transcript.ConfirmedCiphertextsByOption).
package tally

import (
	"math/big"

	"github.com/global-initiative/SEEV-verifier/crypto/curve"
)

// Verify checks that the sum of a single option's confirmed-ballot
// ciphertexts equals a deterministic commitment to its declared tally and
// randomness sum.
func Verify(g1, g2 *curve.Point, rs, zs []*curve.Point, declaredTally, declaredSum *big.Int) bool {
	if len(rs) == 0 || len(rs) != len(zs) {
		return false
	}

	rSum := curve.New().Set(rs[0])
	zSum := curve.New().Set(zs[0])
	for i := 1; i < len(rs); i++ {
		rSum.Add(rSum, rs[i])
		zSum.Add(zSum, zs[i])
	}

	exponent := curve.AddMod(declaredTally, declaredSum)
	lhsZ := curve.New().ScalarMult(g1, exponent)
	lhsR := curve.New().ScalarMult(g2, declaredSum)

	return lhsZ.Equal(zSum) && lhsR.Equal(rSum)
}
