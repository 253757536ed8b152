// Package audit verifies audited (revealed) ballots (spec §4.8): given the
// disclosed per-option randomness and the disclosed selected option, it
// recomputes every option's (R, Z) ciphertext and checks it against the
// published values.
//
// The reveal format is not specified by spec.md (flagged as an Open
// Question in spec §9) and original_source/ does not retain the function
// that implemented it. It is derived here from the one-of-n proof's own
// verification equations (spec §4.5): those equations only type-check if the
// underlying ciphertext construction is R = rho*G2, Z = rho*G1 + v*G1 with
// v in {0, weight} — see SPEC_FULL.md §4.8a for the derivation.
package audit

import (
	"math/big"

	"github.com/global-initiative/SEEV-verifier/crypto/curve"
	"github.com/global-initiative/SEEV-verifier/proof/oneofn"
)

// Reveal holds an audited ballot's disclosed secrets: the randomness used
// for each option's ciphertext, and which option actually received the
// ballot's weight.
type Reveal struct {
	SelectedOptionID *big.Int
	Randomness       map[string]*big.Int // option_id (decimal string) -> rho
}

// Verify recomputes every option's (R, Z) from reveal and checks it against
// the ciphertexts already published in zkps. It returns false if any
// option's randomness is missing from the reveal or any reconstructed point
// fails to match.
func Verify(weight *big.Int, g1, g2 *curve.Point, zkps []oneofn.ZKP, reveal Reveal) bool {
	if len(zkps) == 0 {
		return false
	}
	for _, zkp := range zkps {
		rho, ok := reveal.Randomness[zkp.OptionID.String()]
		if !ok || rho == nil {
			return false
		}

		v := big.NewInt(0)
		if zkp.OptionID.Cmp(reveal.SelectedOptionID) == 0 {
			v = weight
		}

		wantR := curve.New().ScalarMult(g2, rho)
		wantZ := curve.New().Add(curve.New().ScalarMult(g1, rho), curve.New().ScalarMult(g1, v))

		if !wantR.Equal(zkp.R) || !wantZ.Equal(zkp.Z) {
			return false
		}
	}
	return true
}
