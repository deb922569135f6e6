// Copyright © 2022 The gaussiant authors
//
// This file is part of gaussiant. The full gaussiant copyright notice,
// including terms governing use, modification, and redistribution, is
// contained in the file LICENSE at the root of the source code distribution
// tree.

package common

import (
	"math/big"
	"sort"
)

const (
	// PrimeTestN = 15 runs BPSW (Baillie-PSW) plus 14 additional Miller-Rabin
	// rounds. For inputs below 2^64 ProbablyPrime is already deterministic;
	// the extra rounds cost little at this size.
	PrimeTestN = 15
)

// smallPrimes contains the first 15 odd primes (excluding 2).
// Used for rapid elimination of composite candidates before the full test.
var smallPrimes = []uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// A PrimalityTester decides primality of a non-negative integer.
//
// The Gaussian-prime predicate delegates all rational-integer primality
// questions through this interface so that the underlying test can be
// swapped without touching the ring logic.
type PrimalityTester interface {
	IsPrime(n uint64) bool
}

// BPSWTester tests primality with big.Int.ProbablyPrime: one Baillie-PSW
// test plus Rounds-1 Miller-Rabin rounds. The zero value uses PrimeTestN
// rounds.
type BPSWTester struct {
	Rounds int
}

func NewBPSWTester() *BPSWTester {
	return &BPSWTester{Rounds: PrimeTestN}
}

func (t *BPSWTester) IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	rounds := t.Rounds
	if rounds <= 0 {
		rounds = PrimeTestN
	}
	return new(big.Int).SetUint64(n).ProbablyPrime(rounds)
}

// SieveTester answers primality by lookup in a pre-computed Sieve of
// Eratosthenes. Queries above the sieve limit fall back to BPSW.
type SieveTester struct {
	limit    uint64
	primes   []uint
	fallback *BPSWTester
}

func NewSieveTester(limit int) *SieveTester {
	if limit < 2 {
		limit = 2
	}
	return &SieveTester{
		limit:    uint64(limit),
		primes:   GetPrimesUpTo(limit),
		fallback: NewBPSWTester(),
	}
}

func (t *SieveTester) IsPrime(n uint64) bool {
	if n > t.limit {
		Logger.Debugf("sieve limit %d exceeded by %d; falling back to BPSW", t.limit, n)
		return t.fallback.IsPrime(n)
	}
	i := sort.Search(len(t.primes), func(i int) bool { return uint64(t.primes[i]) >= n })
	return i < len(t.primes) && uint64(t.primes[i]) == n
}

// GetPrimesUpTo generates all prime numbers up to the given limit
// using the Sieve of Eratosthenes algorithm.
func GetPrimesUpTo(limit int) []uint {
	if limit < 2 {
		return []uint{}
	}

	isComposite := make([]bool, limit+1)
	isComposite[0] = true
	isComposite[1] = true

	for p := 2; p*p <= limit; p++ {
		if !isComposite[p] {
			for i := p * p; i <= limit; i += p {
				isComposite[i] = true
			}
		}
	}

	var primes []uint
	for p := 2; p <= limit; p++ {
		if !isComposite[p] {
			primes = append(primes, uint(p))
		}
	}
	return primes
}

// GetFirstNPrimes returns the first n prime numbers.
func GetFirstNPrimes(n int) []uint {
	if n <= 0 {
		return []uint{}
	}

	// For common cases, return pre-computed values
	if n <= 25 {
		allPrimes := []uint{
			2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
			59, 61, 67, 71, 73, 79, 83, 89, 97,
		}
		return allPrimes[:n]
	}

	// Estimate an upper bound via the prime number theorem, then grow it
	// until the sieve yields enough primes.
	estimatedLimit := n * 20
	if n > 100 {
		estimatedLimit = n * 15
	}

	primes := GetPrimesUpTo(estimatedLimit)
	for len(primes) < n {
		estimatedLimit *= 2
		primes = GetPrimesUpTo(estimatedLimit)
	}
	return primes[:n]
}
