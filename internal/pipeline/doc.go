// Package pipeline drives FASTA records through parse, transform and write,
// one record at a time.
//
// The only contract to implement is Transform (in-place sequence rewrite).
// The default is dna.ReverseComplement; tests swap it out.
package pipeline
