// Package dna holds the nucleotide complement table and the in-place
// reverse-complement transform.
//
// Recognised alphabet (IUPAC, both cases):
//
//	A<->T  C<->G  R<->Y  K<->M  B<->V  D<->H  N, S, W self-complementary
//
// Lower-case input complements to lower case. Any other byte, including U,
// gap characters and whitespace, is rejected with ErrInvalidBase.
package dna
