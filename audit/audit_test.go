package audit

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/global-initiative/SEEV-verifier/crypto/curve"
	"github.com/global-initiative/SEEV-verifier/proof/oneofn"
)

func ciphertext(optionID *big.Int, g1, g2 *curve.Point, rho, v *big.Int) oneofn.ZKP {
	r := curve.New().ScalarMult(g2, rho)
	z := curve.New().Add(curve.New().ScalarMult(g1, rho), curve.New().ScalarMult(g1, v))
	return oneofn.ZKP{OptionID: optionID, R: r, Z: z}
}

func TestVerifyAcceptsMatchingReveal(t *testing.T) {
	c := qt.New(t)
	g1, g2 := curve.Generator(), curve.New().ScalarBaseMult(big.NewInt(7))
	weight := big.NewInt(1)

	opt1, opt2 := big.NewInt(1), big.NewInt(2)
	rho1, rho2 := big.NewInt(11), big.NewInt(22)

	zkps := []oneofn.ZKP{
		ciphertext(opt1, g1, g2, rho1, big.NewInt(0)),
		ciphertext(opt2, g1, g2, rho2, weight),
	}

	reveal := Reveal{
		SelectedOptionID: opt2,
		Randomness:       map[string]*big.Int{opt1.String(): rho1, opt2.String(): rho2},
	}

	c.Assert(Verify(weight, g1, g2, zkps, reveal), qt.IsTrue)
}

func TestVerifyRejectsWrongRandomness(t *testing.T) {
	c := qt.New(t)
	g1, g2 := curve.Generator(), curve.New().ScalarBaseMult(big.NewInt(7))
	weight := big.NewInt(1)

	opt1 := big.NewInt(1)
	rho := big.NewInt(11)
	zkps := []oneofn.ZKP{ciphertext(opt1, g1, g2, rho, weight)}

	reveal := Reveal{
		SelectedOptionID: opt1,
		Randomness:       map[string]*big.Int{opt1.String(): big.NewInt(999)},
	}

	c.Assert(Verify(weight, g1, g2, zkps, reveal), qt.IsFalse)
}

func TestVerifyRejectsWrongSelectedOption(t *testing.T) {
	c := qt.New(t)
	g1, g2 := curve.Generator(), curve.New().ScalarBaseMult(big.NewInt(7))
	weight := big.NewInt(1)

	opt1, opt2 := big.NewInt(1), big.NewInt(2)
	rho1, rho2 := big.NewInt(11), big.NewInt(22)

	zkps := []oneofn.ZKP{
		ciphertext(opt1, g1, g2, rho1, big.NewInt(0)),
		ciphertext(opt2, g1, g2, rho2, weight),
	}

	// Claims opt1 was selected, but opt2's ciphertext was built with v=weight.
	reveal := Reveal{
		SelectedOptionID: opt1,
		Randomness:       map[string]*big.Int{opt1.String(): rho1, opt2.String(): rho2},
	}

	c.Assert(Verify(weight, g1, g2, zkps, reveal), qt.IsFalse)
}

func TestVerifyRejectsMissingRandomness(t *testing.T) {
	c := qt.New(t)
	g1, g2 := curve.Generator(), curve.New().ScalarBaseMult(big.NewInt(7))
	weight := big.NewInt(1)

	opt1 := big.NewInt(1)
	zkps := []oneofn.ZKP{ciphertext(opt1, g1, g2, big.NewInt(11), weight)}

	reveal := Reveal{SelectedOptionID: opt1, Randomness: map[string]*big.Int{}}
	c.Assert(Verify(weight, g1, g2, zkps, reveal), qt.IsFalse)
}

func TestVerifyRejectsEmptyZKPs(t *testing.T) {
	c := qt.New(t)
	g1, g2 := curve.Generator(), curve.New().ScalarBaseMult(big.NewInt(7))
	reveal := Reveal{SelectedOptionID: big.NewInt(1), Randomness: map[string]*big.Int{}}
	c.Assert(Verify(big.NewInt(1), g1, g2, nil, reveal), qt.IsFalse)
}
