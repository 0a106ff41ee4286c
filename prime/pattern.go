package prime

import (
	"math/big"
)

// field returns width bits of x starting at bit offset, least-significant first.
func field(x *big.Int, offset, width int) uint {
	var v uint
	for i := width - 1; i >= 0; i-- {
		v = v<<1 | x.Bit(offset+i)
	}
	return v
}

// HasLongBitRun reports whether the low BitRunWindow bits of x contain more
// than MaxBitRun identical consecutive bits. Positions above the length of x
// read as zero, so small values always have a long run of zeros.
func HasLongBitRun(x *big.Int) bool {
	prev := x.Bit(0)
	run := 1
	for i := 1; i < BitRunWindow; i++ {
		bit := x.Bit(i)
		if bit != prev {
			prev, run = bit, 1
			continue
		}
		run++
		if run > MaxBitRun {
			return true
		}
	}
	return false
}

// HasUniqueHexDigits reports whether the digit fields of x are pairwise
// distinct. Fields are 5 bits wide and taken on a 5-bit stride from the
// least-significant bit until the remaining value is zero.
//
// The stride is one bit wider than a hexadecimal digit, so beyond the first
// field the comparison does not line up with the hex representation. This is
// the historical behavior and is kept as is.
func HasUniqueHexDigits(x *big.Int) bool {
	var seen uint32
	for off := 0; off < x.BitLen(); off += digitFieldBits {
		mask := uint32(1) << field(x, off, digitFieldBits)
		if seen&mask != 0 {
			return false
		}
		seen |= mask
	}
	return true
}

// HasNoRepeatedNibbles reports whether no two adjacent hexadecimal digits of x
// are equal. Leading zeros are not digits.
func HasNoRepeatedNibbles(x *big.Int) bool {
	prev := field(x, 0, nibbleBits)
	for off := nibbleBits; off < x.BitLen(); off += nibbleBits {
		d := field(x, off, nibbleBits)
		if d == prev {
			return false
		}
		prev = d
	}
	return true
}

// Qualifies reports whether x passes every digit pattern predicate.
// Primality is not checked.
func Qualifies(x *big.Int) bool {
	return !HasLongBitRun(x) && HasNoRepeatedNibbles(x) && HasUniqueHexDigits(x)
}

// Report holds the outcome of every check for one value.
type Report struct {
	Value             *big.Int
	Prime             bool
	LongBitRun        bool
	UniqueHexDigits   bool
	NoRepeatedNibbles bool
}

// Qualifies reports whether the value would be accepted by a Generator.
func (r Report) Qualifies() bool {
	return r.Prime && !r.LongBitRun && r.UniqueHexDigits && r.NoRepeatedNibbles
}

// Inspect runs all checks against x without short-circuiting.
func Inspect(x *big.Int) Report {
	return Report{
		Value:             new(big.Int).Set(x),
		Prime:             IsPrime(x),
		LongBitRun:        HasLongBitRun(x),
		UniqueHexDigits:   HasUniqueHexDigits(x),
		NoRepeatedNibbles: HasNoRepeatedNibbles(x),
	}
}
