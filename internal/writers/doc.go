// Package writers owns the output side of the process: opening the sink and
// classifying write failures. FASTA layout lives in revcomp-core/fasta.
package writers
