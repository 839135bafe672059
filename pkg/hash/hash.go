// Package hash contains the hash functions used to hash template values.
//
// All functions are pure and produce 32-bit results. Hashes are only
// meaningful within one process; they are not stable across versions.
package hash

const DJBInit uint32 = 5381

// DJBCombine folds h into the accumulator acc.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines a sequence of hashes in an order-dependent way.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

// Unordered combines hashes so that the result does not depend on the order
// in which they are supplied. It is used for hashing maps.
func Unordered(hs ...uint32) uint32 {
	var acc uint32
	for _, h := range hs {
		acc += h
	}
	return acc
}

func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

// Int64 hashes a signed integer. Non-negative values hash the same as the
// equal UInt64.
func Int64(i int64) uint32 {
	return UInt64(uint64(i))
}

// UIntPtr hashes a pointer-sized integer, typically an address.
func UIntPtr(p uintptr) uint32 {
	return UInt64(uint64(p))
}

func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
