// Package bitset provides a fixed-capacity dense set of small non-negative
// integers, used throughout the optimizer as a set of vertex or edge indices.
//
// A Set is created with one of the supported capacities (64, 128, 256, 512,
// 1024 or 2048 bits); the capacity is chosen once at the boundary via
// CapacityFor and never changes afterwards. On top of the usual set algebra
// (union, intersection, difference, symmetric difference) a Set supports:
//
//   - ordered enumeration, ascending (ForEach) and descending (ForEachDown);
//   - Increment and Decrement, which treat the set as a little-endian binary
//     numeral: Increment({0,1}) yields {2};
//   - subset enumeration in the classic Knuth order c = ((c | ~s) + 1) & s;
//   - a deterministic Hash that mixes every 64-bit lane with a distinct prime,
//     so the hash depends on the position of each lane.
//
// Misuse (inserting a present element, erasing an absent one, out-of-range
// indices, capacity mismatch between operands) is a programmer error and
// panics. User-facing validation belongs to the callers.
package bitset
