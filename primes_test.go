package enumx

import "testing"

func isPrimeSlow(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestPrimeTable_Entries(t *testing.T) {
	if primeTable[0] != 3 {
		t.Fatalf("first=%d want 3", primeTable[0])
	}
	if last := primeTable[len(primeTable)-1]; last != 1<<31-1 {
		t.Fatalf("last=%d want %d", last, 1<<31-1)
	}
	for i, p := range primeTable {
		if i > 0 && p <= primeTable[i-1] {
			t.Fatalf("table not ascending at %d: %d <= %d", i, p, primeTable[i-1])
		}
		if p != 1<<31-1 && !oddPrime(int(p)) {
			t.Fatalf("table[%d]=%d not prime", i, p)
		}
	}
	// Growth stays near the design ratio so index estimation lands close.
	for i := 1; i < len(primeTable)-1; i++ {
		ratio := float64(primeTable[i]) / float64(primeTable[i-1])
		if ratio > 1.75 {
			t.Fatalf("gap too wide at %d: %d -> %d", i, primeTable[i-1], primeTable[i])
		}
	}
}

func TestPrimeAtLeast_Spot(t *testing.T) {
	cases := []struct{ n, want int }{
		{-7, 3},
		{0, 3},
		{1, 3},
		{2, 3},
		{3, 3},
		{4, 5},
		{8, 11},
		{17, 17},
		{100, 127},
		{1000, 1171},
		{4097, 4967},
		{65536, 69143},
		{1 << 30, 1247568887},
		{1<<31 - 1, 1<<31 - 1},
	}
	for _, c := range cases {
		if got := primeAtLeast(c.n); got != c.want {
			t.Fatalf("primeAtLeast(%d)=%d want %d", c.n, got, c.want)
		}
	}
}

func TestPrimeAtLeast_SweepAgainstScan(t *testing.T) {
	for n := range 5000 {
		want := 0
		for _, p := range primeTable {
			if int(p) >= n {
				want = int(p)
				break
			}
		}
		if got := primeAtLeast(n); got != want {
			t.Fatalf("primeAtLeast(%d)=%d want %d", n, got, want)
		}
	}
}

func TestTightPrimeAtLeast(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{100, 101},
		{1000, 1009},
		{4097, 4099},
		{100000, 100003},
	}
	for _, c := range cases {
		if got := tightPrimeAtLeast(c.n); got != c.want {
			t.Fatalf("tightPrimeAtLeast(%d)=%d want %d", c.n, got, c.want)
		}
	}
	for n := range 2000 {
		got := tightPrimeAtLeast(n)
		if got < n || !isPrimeSlow(got) {
			t.Fatalf("tightPrimeAtLeast(%d)=%d not a prime >= n", n, got)
		}
		// No smaller prime fits between n and the answer.
		for c := n; c < got; c++ {
			if isPrimeSlow(c) {
				t.Fatalf("tightPrimeAtLeast(%d)=%d skipped prime %d", n, got, c)
			}
		}
	}
}
