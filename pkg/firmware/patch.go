package firmware

// Apply writes name into the target field and returns the patched image
// as a freshly allocated buffer of the same total length; the input slice
// is never aliased or mutated. The tail of the field is padded with NUL
// bytes up to the target capacity. Bytes outside
// [Offset, Offset+Capacity) are copied through untouched.
func Apply(data []byte, t Target, name []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	copy(out[t.Offset:], name)
	for i := t.Offset + len(name); i < t.Offset+t.Capacity; i++ {
		out[i] = 0x00
	}
	return out
}
