// Package fasta reads FASTA formatted input. A record is a '>' header line
// holding the record ID followed by one or more sequence lines, which the
// reader concatenates and normalizes to upper case.
//
// The reader enforces format only. Alphabet checks (DNA vs RNA vs protein)
// belong to the caller.
package fasta
