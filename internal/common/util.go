package common

// WipeByteArray overwrites the buffer with zeros. Use it on password buffers
// as soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
