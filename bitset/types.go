package bitset

import "errors"

// Capacities lists the supported Set widths, smallest first.
var Capacities = []int{64, 128, 256, 512, 1024, 2048}

// MaxCapacity is the widest supported Set.
const MaxCapacity = 2048

// ErrCapacity is returned by CapacityFor when the requested size exceeds
// MaxCapacity.
var ErrCapacity = errors.New("bitset: size exceeds maximal capacity")

// CapacityFor returns the smallest supported capacity that can hold indices
// 0..size-1, or ErrCapacity if size exceeds MaxCapacity.
func CapacityFor(size int) (int, error) {
	for _, c := range Capacities {
		if size <= c {
			return c, nil
		}
	}

	return 0, ErrCapacity
}

// primes holds one multiplicative factor per 64-bit lane of the widest Set.
// Lane i of a Set is mixed with primes[i], which makes the hash sensitive to
// the position of each lane, not only its value.
var primes = [MaxCapacity / 64]uint64{
	9973, 10007, 10009, 10037, 10039, 10061, 10067, 10069,
	10079, 10091, 10093, 10099, 10103, 10111, 10133, 10139,
	10141, 10151, 10159, 10163, 10169, 10177, 10181, 10193,
	10211, 10223, 10243, 10247, 10253, 10259, 10267, 10271,
}
