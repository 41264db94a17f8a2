package trigger

// hashName is the djb2-xor string hash used for bucket placement.
// Collisions are expected and resolved by exact name comparison during chain walks.
func hashName(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) ^ uint32(s[i])
	}
	return h
}
