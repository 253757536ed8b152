// Package curve implements point and scalar arithmetic over NIST P-256, the
// group every DRE-IP proof in this verifier is checked against.
//
// The Point API follows the mutate-receiver convention used throughout the
// example ecosystem's elliptic-curve packages ("z.Add(x, y)" sets z and
// returns it, so call chains can reuse a single scratch value): every
// operation takes its operands as arguments and stores the result in the
// receiver. The zero Point is the point at infinity.
//
// P-256 itself comes from the standard library's constant-time
// implementation (crypto/elliptic.P256()); no example in the retrieval pack
// ships a vetted NIST P-256 point library (the pack's curve-arithmetic
// packages target BabyJubJub, BN254, BLS12-377 or secp256k1), and
// reimplementing field arithmetic by hand would be the non-idiomatic choice
// here — see DESIGN.md.
package curve

import (
	"crypto/elliptic"
	"math/big"
)

// P256 returns the NIST P-256 curve.
func P256() elliptic.Curve {
	return elliptic.P256()
}

// Order returns the order n of the P-256 group.
func Order() *big.Int {
	return P256().Params().N
}

// Prime returns the field prime p that P-256's coordinates live in.
func Prime() *big.Int {
	return P256().Params().P
}

// Point is a point on the P-256 curve, represented in affine coordinates.
// A Point with X == nil is the point at infinity.
type Point struct {
	X, Y *big.Int
}

// New returns the point at infinity.
func New() *Point {
	return &Point{}
}

// Generator returns G1, the curve's standard base point.
func Generator() *Point {
	params := P256().Params()
	return &Point{X: new(big.Int).Set(params.Gx), Y: new(big.Int).Set(params.Gy)}
}

// SetInfinity sets p to the point at infinity and returns p.
func (p *Point) SetInfinity() *Point {
	p.X, p.Y = nil, nil
	return p
}

// SetGenerator sets p to G1 and returns p.
func (p *Point) SetGenerator() *Point {
	params := P256().Params()
	p.X, p.Y = new(big.Int).Set(params.Gx), new(big.Int).Set(params.Gy)
	return p
}

// Set copies a into p and returns p.
func (p *Point) Set(a *Point) *Point {
	if a.IsInfinity() {
		return p.SetInfinity()
	}
	p.X, p.Y = new(big.Int).Set(a.X), new(big.Int).Set(a.Y)
	return p
}

// SetAffine sets p to the given affine coordinates and returns p.
func (p *Point) SetAffine(x, y *big.Int) *Point {
	p.X, p.Y = new(big.Int).Set(x), new(big.Int).Set(y)
	return p
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.X == nil || p.Y == nil
}

// Affine returns p's affine coordinates. Undefined for the point at infinity.
func (p *Point) Affine() (x, y *big.Int) {
	return p.X, p.Y
}

// Equal reports whether p and q represent the same point.
func (p *Point) Equal(q *Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	if a.IsInfinity() {
		return p.Set(b)
	}
	if b.IsInfinity() {
		return p.Set(a)
	}
	x, y := P256().Add(a.X, a.Y, b.X, b.Y)
	return p.fromLibResult(x, y)
}

// Neg sets p = -a and returns p.
func (p *Point) Neg(a *Point) *Point {
	if a.IsInfinity() {
		return p.SetInfinity()
	}
	y := new(big.Int).Sub(Prime(), a.Y)
	y.Mod(y, Prime())
	p.X, p.Y = new(big.Int).Set(a.X), y
	return p
}

// ScalarMult sets p = k·a and returns p. k is reduced modulo the group order
// first; a zero scalar (or the identity point) yields the point at infinity.
func (p *Point) ScalarMult(a *Point, k *big.Int) *Point {
	kk := ReduceScalar(k)
	if kk.Sign() == 0 || a.IsInfinity() {
		return p.SetInfinity()
	}
	x, y := P256().ScalarMult(a.X, a.Y, kk.Bytes())
	return p.fromLibResult(x, y)
}

// ScalarBaseMult sets p = k·G1 and returns p.
func (p *Point) ScalarBaseMult(k *big.Int) *Point {
	kk := ReduceScalar(k)
	if kk.Sign() == 0 {
		return p.SetInfinity()
	}
	x, y := P256().ScalarBaseMult(kk.Bytes())
	return p.fromLibResult(x, y)
}

// fromLibResult normalizes crypto/elliptic's (0,0)-is-infinity convention to
// this package's X==nil convention.
func (p *Point) fromLibResult(x, y *big.Int) *Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return p.SetInfinity()
	}
	p.X, p.Y = x, y
	return p
}

// Valid reports whether p is a well-formed, non-infinity point on the curve:
// not at infinity, coordinates in [0, p-1], and on the curve. P-256's
// cofactor is 1, so on-curve plus not-infinity is sufficient public-key/point
// validation (spec §4.1).
func (p *Point) Valid() bool {
	if p.IsInfinity() {
		return false
	}
	prime := Prime()
	if p.X.Sign() < 0 || p.X.Cmp(prime) >= 0 {
		return false
	}
	if p.Y.Sign() < 0 || p.Y.Cmp(prime) >= 0 {
		return false
	}
	return P256().IsOnCurve(p.X, p.Y)
}

// ReduceScalar reduces k modulo the group order n, returning a new
// non-negative value in [0, n-1]. Arbitrary (including negative or
// over-sized) big-endian integers are accepted; scalar multiplication always
// reduces through this function first so callers never need to pre-reduce.
func ReduceScalar(k *big.Int) *big.Int {
	return new(big.Int).Mod(k, Order())
}

// ScalarFromBytes interprets buf as a big-endian unsigned integer and reduces
// it modulo the group order.
func ScalarFromBytes(buf []byte) *big.Int {
	return ReduceScalar(new(big.Int).SetBytes(buf))
}

// AddMod returns (a+b) mod n.
func AddMod(a, b *big.Int) *big.Int {
	return ReduceScalar(new(big.Int).Add(a, b))
}

// SubMod returns (a-b) mod n.
func SubMod(a, b *big.Int) *big.Int {
	return ReduceScalar(new(big.Int).Sub(a, b))
}
