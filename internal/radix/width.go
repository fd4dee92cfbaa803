package radix

import "math/big"

// MinSignedWidth is the smallest width used for a negative value.
const MinSignedWidth = 8

// BitLength returns the number of bits in the minimal unsigned binary
// representation of |m|. It is 0 for 0 and for a nil m.
func BitLength(m *big.Int) int {
	if m == nil {
		return 0
	}
	// BitLen ignores the sign.
	return m.BitLen()
}

// SignedWidth returns the two's-complement width for a negative value whose
// magnitude is given. The result always leaves room for a set sign bit.
func SignedWidth(magnitude *big.Int) int {
	return max(MinSignedWidth, BitLength(magnitude)+1)
}

// transform returns 2^width + v. For a negative v with
// width >= SignedWidth(|v|) the result lies in [2^(width-1), 2^width).
func transform(v *big.Int, width int) *big.Int {
	t := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return t.Add(t, v)
}
