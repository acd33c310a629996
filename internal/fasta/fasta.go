package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is a single FASTA record: the header text after '>' and the
// sequence lines concatenated into one string.
type Record struct {
	ID       string
	Sequence string
}

// Reader reads records from FASTA encoded input.
//
// Sequence lines may only contain ASCII letters; lower case letters are
// normalized to upper case. Blank lines and surrounding whitespace are
// ignored wherever they appear. Errors carry the 1-based input line number.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	buf        *bufio.Reader
	line       int
	nextHeader []byte
}

// NewReader returns a Reader consuming FASTA records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf:  bufio.NewReader(r),
		line: 1,
	}
}

// Read returns the next record in the input. It returns io.EOF once the
// input is exhausted.
func (r *Reader) Read() (Record, error) {
	var rec Record
	var seq []byte
	seenHeader := false

	// The previous Read stops only after consuming the header line of the
	// record that follows it, so pick that header up first.
	if r.nextHeader != nil {
		rec.ID = trimHeader(r.nextHeader)
		r.nextHeader = nil
		seenHeader = true
	}
	for {
		line, err := r.buf.ReadBytes('\n')
		if err == io.EOF {
			if len(line) == 0 {
				if seenHeader {
					rec.Sequence = string(seq)
					return rec, nil
				}
				return Record{}, io.EOF
			}
		} else if err != nil {
			return Record{}, err
		}
		line = bytes.TrimSpace(line)

		if len(line) == 0 {
			r.line++
			continue
		}

		if !seenHeader {
			if line[0] != '>' {
				return Record{}, fmt.Errorf("line %d: expected '>', got %q", r.line, line[0])
			}
			rec.ID = trimHeader(line)
			seenHeader = true
			r.line++
			continue
		}
		if line[0] == '>' {
			// Start of the next record. Keep its header for the next call.
			r.nextHeader = line
			r.line++
			rec.Sequence = string(seq)
			return rec, nil
		}

		for i, b := range line {
			switch {
			case b >= 'a' && b <= 'z':
				line[i] = b - 'a' + 'A'
			case b >= 'A' && b <= 'Z':
			default:
				return Record{}, fmt.Errorf("line %d: invalid sequence character %q", r.line, b)
			}
		}
		seq = append(seq, line...)
		r.line++
	}
}

// ReadAll reads records until the input is exhausted. Reading stops at the
// first malformed record.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func trimHeader(line []byte) string {
	return string(bytes.TrimSpace(bytes.TrimLeft(line, ">")))
}
