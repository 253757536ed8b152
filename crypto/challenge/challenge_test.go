package challenge

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/global-initiative/SEEV-verifier/crypto/curve"
)

func TestHashToScalarDeterministic(t *testing.T) {
	c := qt.New(t)
	parts := []string{"1", "2", "3"}
	c.Assert(HashToScalar(parts).Cmp(HashToScalar(parts)), qt.Equals, 0)
}

func TestHashToScalarSensitiveToOrder(t *testing.T) {
	c := qt.New(t)
	a := HashToScalar([]string{"1", "2"})
	b := HashToScalar([]string{"2", "1"})
	c.Assert(a.Cmp(b), qt.Not(qt.Equals), 0)
}

func TestVoteProofChallengeSensitiveToGeneratorOrder(t *testing.T) {
	c := qt.New(t)
	g1, g2 := curve.Generator(), curve.New().ScalarBaseMult(big.NewInt(2))
	r, z := curve.New().ScalarBaseMult(big.NewInt(3)), curve.New().ScalarBaseMult(big.NewInt(4))
	a1, a2 := curve.New().ScalarBaseMult(big.NewInt(5)), curve.New().ScalarBaseMult(big.NewInt(6))
	b1, b2 := curve.New().ScalarBaseMult(big.NewInt(7)), curve.New().ScalarBaseMult(big.NewInt(8))

	base := VoteProof(big.NewInt(1), big.NewInt(2), big.NewInt(3), g1, g2, r, z, a1, a2, b1, b2)
	// Swapping which point is passed as g1 vs g2 must change the digest: the
	// hash input order is NOT symmetric in the proof's own parameter order.
	swapped := VoteProof(big.NewInt(1), big.NewInt(2), big.NewInt(3), g2, g1, r, z, a1, a2, b1, b2)
	c.Assert(base.Cmp(swapped), qt.Not(qt.Equals), 0)
}

func TestBallotEqualityChallengeDeterministic(t *testing.T) {
	c := qt.New(t)
	g1, g2 := curve.Generator(), curve.New().ScalarBaseMult(big.NewInt(2))
	c1, c2 := curve.New().ScalarBaseMult(big.NewInt(3)), curve.New().ScalarBaseMult(big.NewInt(4))

	x := BallotEquality(big.NewInt(1), big.NewInt(2), g1, g2, c1, c2)
	y := BallotEquality(big.NewInt(1), big.NewInt(2), g1, g2, c1, c2)
	c.Assert(x.Cmp(y), qt.Equals, 0)
}
