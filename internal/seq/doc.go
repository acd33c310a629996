// Package seq implements the pure sequence operations behind the rosalind
// problem handlers: nucleotide counting, transcription, reverse
// complementing, GC content, Hamming distance, motif search, codon
// translation, and reverse-translation counting.
//
// DNA, RNA and Protein are immutable string types validated against their
// alphabets at construction (ParseDNA, ParseRNA, ParseProtein). Operations
// never mutate their receiver; each returns a new value.
package seq
