package subset

// mix Spreads the bits of a state index; canonical set hashes are sums of mixed members so the
// hash does not depend on insertion order.
func mix(key int) uint64 {
	return uint64(mix32(key))
}

// Final mixing step of the 32 bit MurmurHash3.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}
