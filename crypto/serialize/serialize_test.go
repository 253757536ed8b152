package serialize

import (
	"crypto/elliptic"
	"encoding/base64"
	"encoding/hex"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/global-initiative/SEEV-verifier/crypto/curve"
)

func TestPointFromStringUncompressed(t *testing.T) {
	c := qt.New(t)
	g := curve.Generator()
	raw := elliptic.Marshal(curve.P256(), g.X, g.Y) //nolint:staticcheck
	s := "0x" + hex.EncodeToString(raw)

	p, err := PointFromString(s)
	c.Assert(err, qt.IsNil)
	c.Assert(p.Equal(g), qt.IsTrue)
}

func TestPointFromStringCompressed(t *testing.T) {
	c := qt.New(t)
	g := curve.New().ScalarBaseMult(big.NewInt(42))
	raw := elliptic.MarshalCompressed(curve.P256(), g.X, g.Y)
	s := hex.EncodeToString(raw)

	p, err := PointFromString(s)
	c.Assert(err, qt.IsNil)
	c.Assert(p.Equal(g), qt.IsTrue)
}

func TestPointFromStringInvalid(t *testing.T) {
	c := qt.New(t)
	_, err := PointFromString("not hex!")
	c.Assert(err, qt.Not(qt.IsNil))

	_, err = PointFromString("ff0011")
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestSignatureFromBase64(t *testing.T) {
	c := qt.New(t)
	want := []byte{1, 2, 3, 4, 5}
	s := base64.StdEncoding.EncodeToString(want)

	got, err := SignatureFromBase64(s)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, want)

	_, err = SignatureFromBase64("not base64!!")
	c.Assert(err, qt.Not(qt.IsNil))
}
