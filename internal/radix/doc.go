// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package radix turns signed integers into binary and hexadecimal text.
//
// # Encoding rules
//
// Zero is always "0". Positive values use ordinary positional notation with
// no leading zero digit. Negative values use a variable-width two's
// complement: the width is
//
//	w = max(8, bitlength(|v|) + 1)
//
// and the encoded number is the transformed magnitude T = 2^w + v, written
// with the positive rules. Because T >= 2^(w-1), the binary form always has
// exactly w digits and starts with 1.
//
// The hexadecimal form of a negative value reuses the same w and T and is not
// padded to a nibble boundary, so -200 (w = 9, T = 312) encodes as "138"
// rather than "F38". PaddedHexEncoder produces the sign-extended form for
// callers that need a digit count of exactly ceil(w/4).
//
// Values are *big.Int, so there is no magnitude ceiling. Every function in the
// package is pure and safe for concurrent use.
package radix
