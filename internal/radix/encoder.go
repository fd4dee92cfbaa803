package radix

import (
	"math/big"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Encoder writes integers in a power-of-two base.
type Encoder struct {
	name         string
	bitsPerDigit int
	alphabet     string

	// alignWidth rounds a negative value's width up to a whole number of
	// digits, sign-extending the encoded form.
	alignWidth bool
}

var (
	// BinaryEncoder writes base 2 with the digits 0 and 1.
	BinaryEncoder = Encoder{name: "binary", bitsPerDigit: 1, alphabet: "01"}

	// HexEncoder writes base 16 with uppercase digits. Negative values are
	// not padded to a nibble boundary.
	HexEncoder = Encoder{name: "hex", bitsPerDigit: 4, alphabet: hexDigits}

	// PaddedHexEncoder is HexEncoder with negative values sign-extended to
	// exactly ceil(SignedWidth/4) digits.
	PaddedHexEncoder = Encoder{name: "hex-padded", bitsPerDigit: 4, alphabet: hexDigits, alignWidth: true}
)

// Name identifies the encoder in logs.
func (e Encoder) Name() string { return e.name }

// Encode returns the textual form of v. A nil v encodes as zero.
func (e Encoder) Encode(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return "0"
	}
	if v.Sign() > 0 {
		return e.digits(v)
	}

	width := SignedWidth(new(big.Int).Abs(v))
	if e.alignWidth {
		width = roundUp(width, e.bitsPerDigit)
	}
	return e.digits(transform(v, width))
}

// digits writes a positive m most significant digit first. Each step takes
// the next bitsPerDigit bits, which is the remainder of dividing by the base.
func (e Encoder) digits(m *big.Int) string {
	n := (m.BitLen() + e.bitsPerDigit - 1) / e.bitsPerDigit

	var sb strings.Builder
	sb.Grow(n)
	for d := n - 1; d >= 0; d-- {
		var idx uint
		for b := e.bitsPerDigit - 1; b >= 0; b-- {
			idx = idx<<1 | m.Bit(d*e.bitsPerDigit+b)
		}
		sb.WriteByte(e.alphabet[idx])
	}
	return sb.String()
}

func roundUp(n, multiple int) int {
	return (n + multiple - 1) / multiple * multiple
}

// Binary is BinaryEncoder.Encode.
func Binary(v *big.Int) string { return BinaryEncoder.Encode(v) }

// Hex is HexEncoder.Encode.
func Hex(v *big.Int) string { return HexEncoder.Encode(v) }

// HexPadded is PaddedHexEncoder.Encode.
func HexPadded(v *big.Int) string { return PaddedHexEncoder.Encode(v) }

// BinaryInt64 encodes a machine integer in base 2.
func BinaryInt64(n int64) string { return Binary(big.NewInt(n)) }

// HexInt64 encodes a machine integer in base 16.
func HexInt64(n int64) string { return Hex(big.NewInt(n)) }
