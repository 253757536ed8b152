package curve

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestGeneratorOnCurve(t *testing.T) {
	c := qt.New(t)
	g := Generator()
	c.Assert(g.Valid(), qt.IsTrue)
}

func TestInfinityRejectedByValid(t *testing.T) {
	c := qt.New(t)
	c.Assert(New().Valid(), qt.IsFalse)
}

func TestScalarMultZeroIsInfinity(t *testing.T) {
	c := qt.New(t)
	p := New().ScalarMult(Generator(), big.NewInt(0))
	c.Assert(p.IsInfinity(), qt.IsTrue)
}

func TestScalarMultReducesLargeScalar(t *testing.T) {
	c := qt.New(t)
	k := new(big.Int).Add(Order(), big.NewInt(7))
	p1 := New().ScalarMult(Generator(), k)
	p2 := New().ScalarMult(Generator(), big.NewInt(7))
	c.Assert(p1.Equal(p2), qt.IsTrue)
}

func TestScalarMultNegativeScalar(t *testing.T) {
	c := qt.New(t)
	k := big.NewInt(-3)
	p1 := New().ScalarMult(Generator(), k)
	p2 := New().ScalarMult(Generator(), new(big.Int).Sub(Order(), big.NewInt(3)))
	c.Assert(p1.Equal(p2), qt.IsTrue)
}

func TestAddCommutes(t *testing.T) {
	c := qt.New(t)
	a := New().ScalarBaseMult(big.NewInt(3))
	b := New().ScalarBaseMult(big.NewInt(5))
	ab := New().Add(a, b)
	ba := New().Add(b, a)
	c.Assert(ab.Equal(ba), qt.IsTrue)

	eight := New().ScalarBaseMult(big.NewInt(8))
	c.Assert(ab.Equal(eight), qt.IsTrue)
}

func TestAddInfinityIdentity(t *testing.T) {
	c := qt.New(t)
	g := Generator()
	sum := New().Add(g, New())
	c.Assert(sum.Equal(g), qt.IsTrue)
}

func TestNegCancelsOut(t *testing.T) {
	c := qt.New(t)
	g := Generator()
	negG := New().Neg(g)
	sum := New().Add(g, negG)
	c.Assert(sum.IsInfinity(), qt.IsTrue)
}

func TestValidRejectsOffCurvePoint(t *testing.T) {
	c := qt.New(t)
	g := Generator()
	off := &Point{X: g.X, Y: new(big.Int).Add(g.Y, big.NewInt(1))}
	c.Assert(off.Valid(), qt.IsFalse)
}

func TestValidRejectsOutOfRangeCoordinate(t *testing.T) {
	c := qt.New(t)
	g := Generator()
	huge := &Point{X: new(big.Int).Add(Prime(), big.NewInt(1)), Y: g.Y}
	c.Assert(huge.Valid(), qt.IsFalse)
}

func TestReduceScalarAddSub(t *testing.T) {
	c := qt.New(t)
	a := new(big.Int).Sub(Order(), big.NewInt(1))
	b := big.NewInt(2)
	c.Assert(AddMod(a, b).Cmp(big.NewInt(1)), qt.Equals, 0)
	c.Assert(SubMod(b, a).Cmp(big.NewInt(3)), qt.Equals, 0)
}
