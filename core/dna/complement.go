// core/dna/complement.go
package dna

var complement [256]byte

func init() {
	pair := func(a, b byte) {
		complement[a] = b
		complement[b] = a
		complement[a|0x20] = b | 0x20
		complement[b|0x20] = a | 0x20
	}
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y')
	pair('K', 'M')
	pair('B', 'V')
	pair('D', 'H')
	pair('N', 'N')
	pair('S', 'S')
	pair('W', 'W')
}

// Complement returns the complement of b, and false if b is outside the alphabet.
func Complement(b byte) (byte, bool) {
	c := complement[b]
	return c, c != 0
}

// Valid reports whether every byte of seq is in the alphabet.
// It returns the index of the first bad byte, or -1.
func Valid(seq []byte) int {
	for i, b := range seq {
		if complement[b] == 0 {
			return i
		}
	}
	return -1
}
