package enumx

import "math/bits"

// primeTable holds primes spaced by a growth factor of roughly 1.27,
// ascending to the largest 31-bit prime (itself prime). Bucket counts drawn
// from it keep chained hash tables near their target load factor while
// staying prime, which spreads clustered keys across buckets.
var primeTable = [...]int32{
	3, 5, 7, 11, 17, 23,
	31, 41, 53, 71, 97, 127,
	163, 211, 269, 347, 443, 563,
	719, 919, 1171, 1489, 1901, 2417,
	3079, 3911, 4967, 6311, 8017, 10193,
	12953, 16451, 20897, 26557, 33739, 42853,
	54437, 69143, 87833, 111577, 141707, 179969,
	228577, 290317, 368717, 468271, 594709, 755309,
	959263, 1218277, 1547213, 1964969, 2495527, 3169321,
	4025041, 5111833, 6492029, 8244883, 10471007, 13298189,
	16888709, 21448667, 27239819, 34594583, 43935161, 55797659,
	70863031, 89996051, 114294991, 145154641, 184346411, 234119953,
	297332351, 377612087, 479567351, 609050539, 773494207, 982337689,
	1247568887, 1584412493, 2012203891, 2147483647,
}

// primeAtLeast returns the smallest table prime >= n. Inputs beyond the
// final entry clamp to it.
func primeAtLeast(n int) int {
	if n <= 3 {
		return 3
	}
	last := len(primeTable) - 1
	if n >= int(primeTable[last]) {
		return int(primeTable[last])
	}
	// Estimate the index from the bit length, then refine linearly. The
	// table grows ~1.27x per entry, about 2.9 entries per power of two.
	i := (bits.Len(uint(n))*29 - 46) / 10
	if i < 0 {
		i = 0
	} else if i > last {
		i = last
	}
	for i > 0 && primeTable[i-1] >= int32(n) {
		i--
	}
	for primeTable[i] < int32(n) {
		i++
	}
	return int(primeTable[i])
}

// tightPrimeAtLeast returns the smallest prime >= n, checking odd candidates
// between n and the table answer by trial division. Build-once tables use it
// to avoid the slack a spaced table entry would add.
func tightPrimeAtLeast(n int) int {
	if n <= 2 {
		return 2
	}
	p := primeAtLeast(n)
	for c := n | 1; c < p; c += 2 {
		if oddPrime(c) {
			return c
		}
	}
	return p
}

// oddPrime reports whether odd c >= 3 is prime by trial division.
func oddPrime(c int) bool {
	v := int64(c)
	for d := int64(3); d*d <= v; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}
