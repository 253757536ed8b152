// Package oneofn verifies the disjunctive one-of-n vote proof (spec §4.5):
// for a single ballot's single option, the proof shows the option's
// ciphertext (R, Z) encodes either 0 or the ballot's weight, without
// revealing which.
//
// Grounded on original_source/seev_verifier_lib/verifier_lib.py's vote_proof,
// redesigned per spec §9: the branch consistency check is an explicit
// two-branch enumeration instead of the original's convoluted boolean
// expression (which spec §9 flags as a suspected defect in early versions).
package oneofn

import (
	"math/big"

	"github.com/global-initiative/SEEV-verifier/crypto/challenge"
	"github.com/global-initiative/SEEV-verifier/crypto/curve"
)

// ZKP holds one option's one-of-n proof fields, named after spec §3's
// OneOfNZKP entity.
type ZKP struct {
	OptionID *big.Int
	R, Z     *curve.Point
	A1, A2   *curve.Point
	B1, B2   *curve.Point
	R1, R2   *big.Int // result_r_i
	D1, D2   *big.Int // result_d_i
}

// Verify checks zkp against the ballot's (electionID, ballotID, weight) and
// the election's two generators. It returns false on any structural or
// cryptographic mismatch; it never panics on a malformed proof.
func Verify(electionID, ballotID, weight *big.Int, g1, g2 *curve.Point, zkp ZKP) bool {
	if !zkp.R.Valid() || !zkp.Z.Valid() {
		return false
	}

	c := challenge.VoteProof(electionID, zkp.OptionID, ballotID, g1, g2, zkp.R, zkp.Z, zkp.A1, zkp.A2, zkp.B1, zkp.B2)

	if curve.AddMod(zkp.D1, zkp.D2).Cmp(curve.ReduceScalar(c)) != 0 {
		return false
	}

	a1Prime := curve.New().Add(
		curve.New().ScalarMult(g2, zkp.R1),
		curve.New().ScalarMult(zkp.R, zkp.D1),
	)
	a2Prime := curve.New().Add(
		curve.New().ScalarMult(g2, zkp.R2),
		curve.New().ScalarMult(zkp.R, zkp.D2),
	)
	if !a1Prime.Equal(zkp.A1) || !a2Prime.Equal(zkp.A2) {
		return false
	}

	// Z shifted by -weight·G1: the branch where this option was selected.
	zSelected := curve.New().Add(zkp.Z, curve.New().Neg(curve.New().ScalarMult(g1, weight)))

	b1NotSelected := curve.New().Add(curve.New().ScalarMult(g1, zkp.R1), curve.New().ScalarMult(zkp.Z, zkp.D1))
	b1Selected := curve.New().Add(curve.New().ScalarMult(g1, zkp.R1), curve.New().ScalarMult(zSelected, zkp.D1))
	b2NotSelected := curve.New().Add(curve.New().ScalarMult(g1, zkp.R2), curve.New().ScalarMult(zkp.Z, zkp.D2))
	b2Selected := curve.New().Add(curve.New().ScalarMult(g1, zkp.R2), curve.New().ScalarMult(zSelected, zkp.D2))

	// Exactly one of the two cross-patterns must hold: side 1 selected and
	// side 2 not, or side 1 not and side 2 selected.
	side1Selected := zkp.B1.Equal(b1Selected) && zkp.B2.Equal(b2NotSelected)
	side2Selected := zkp.B1.Equal(b1NotSelected) && zkp.B2.Equal(b2Selected)

	return side1Selected != side2Selected
}
