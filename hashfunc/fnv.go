package hashfunc

// FNV32Prime - The 32-bit FNV prime
const FNV32Prime uint32 = 0x01000193

// FNV32OffsetBasis - The standard FNV-1 32-bit offset basis. FNV1 deliberately does not use it.
const FNV32OffsetBasis uint32 = 2166136261

// FNV1 - Returns the FNV-1 hash of key using a zero seed.
// Note that this differs from the canonical FNV-1 (see FNV1Seed with FNV32OffsetBasis), values produced here
// must stay stable since slot placement depends on them.
func FNV1(key []byte) uint32 {
	return FNV1Seed(key, 0)
}

// FNV1Seed - Returns the FNV-1 hash of key starting from the given accumulator value.
// Each byte is folded in by first multiplying with FNV32Prime (wrapping) and then xor-ing the byte.
func FNV1Seed(key []byte, seed uint32) uint32 {
	h := seed
	for _, c := range key {
		h *= FNV32Prime
		h ^= uint32(c)
	}

	return h
}
