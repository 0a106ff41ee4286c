package prime

const (
	// BitRunWindow is the number of bit positions inspected by HasLongBitRun,
	// counted from the least-significant bit. It is one wider than a 64-bit
	// candidate so a run reaching past the top bit is still seen.
	BitRunWindow = 65

	// MaxBitRun is the longest run of identical consecutive bits allowed.
	MaxBitRun = 3
)

const (
	// digitFieldBits is the stride and width of the fields compared by
	// HasUniqueHexDigits.
	digitFieldBits = 5

	// nibbleBits is the width of one hexadecimal digit.
	nibbleBits = 4
)

const (
	// MillerRabinRounds is the number of Miller-Rabin rounds applied on top of
	// Baillie-PSW for values of 64 bits or more, bounding the false-positive
	// probability by 4^-64.
	MillerRabinRounds = 64

	// smallPrimeLimit bounds the trial-division table used by IsPrime.
	smallPrimeLimit = 1024
)

const (
	// DefaultMaxAttempts bounds the consecutive rejected candidates while
	// searching for one qualifying prime.
	DefaultMaxAttempts = 1 << 24

	// secureBlockSize is the number of random bytes locked per SecureSource refill.
	secureBlockSize = 4096

	// seedLabel is the HKDF info string used to expand seeds.
	seedLabel = "hexprime-seed"
)
