package types

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// BigInt is a math/big.Int wrapper that marshals to JSON (and CBOR) as a
// decimal string, matching the wire representation bulletin-board
// transcripts use for election_id, ballot_id, weight, tally and sum fields.
type BigInt big.Int

// NewBigInt wraps x.
func NewBigInt(x int64) *BigInt {
	return (*BigInt)(big.NewInt(x))
}

// Int returns the underlying *big.Int.
func (b *BigInt) Int() *big.Int {
	return (*big.Int)(b)
}

func (b *BigInt) String() string {
	if b == nil {
		return "0"
	}
	return b.Int().String()
}

// MarshalText returns the decimal string representation.
func (b *BigInt) MarshalText() ([]byte, error) {
	if b == nil {
		return []byte("0"), nil
	}
	return b.Int().MarshalText()
}

// UnmarshalText parses an unquoted integer string: decimal, or hex, octal or
// binary with a 0x, 0o or 0b prefix. Quotes are not accepted here; see
// UnmarshalJSON.
func (b *BigInt) UnmarshalText(data []byte) error {
	if b == nil {
		return fmt.Errorf("cannot unmarshal into nil BigInt")
	}
	return b.Int().UnmarshalText(data)
}

// UnmarshalJSON accepts both numeric and string JSON representations, since
// bulletin-board producers disagree on whether election_id is quoted.
func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b == nil {
		return fmt.Errorf("cannot unmarshal into nil BigInt")
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return b.UnmarshalText(data[1 : len(data)-1])
	}
	return b.UnmarshalText(data)
}

// MarshalCBOR encodes the BigInt as a CBOR text string, so archival exports
// of a transcript keep the same decimal representation as JSON.
func (b *BigInt) MarshalCBOR() ([]byte, error) {
	txt, err := b.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(txt))
}

// UnmarshalCBOR decodes a CBOR text string into the BigInt.
func (b *BigInt) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}
