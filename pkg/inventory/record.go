package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FieldCount is the number of comma-separated fields in one inventory line:
// partition, disk, pvid, serial, size, volume group.
const FieldCount = 6

var (
	// ErrMalformedRecord is returned for a line that does not split into FieldCount fields.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidSize is returned when the size field is not a non-negative integer.
	ErrInvalidSize = errors.New("invalid size")
)

// ParseError locates a bad inventory line.
type ParseError struct {
	Source string
	Line   int
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	loc := e.Source
	if loc == "" {
		loc = "line"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", loc, e.Err, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Record is one disk row of the inventory file.
type Record struct {
	Partition   string
	Disk        string
	PVID        string
	Serial      string
	Size        int64
	VolumeGroup string

	// Source and Line point back at the input for diagnostics.
	Source string
	Line   int
}

// Tokenize strips the line, removes every whitespace character in it and
// splits what is left on commas.
func Tokenize(line string) []string {
	return strings.Split(stripSpaces(strings.TrimSpace(line)), ",")
}

// ParseLine tokenizes a single raw line and parses it into a Record.
func ParseLine(line string, n int) (Record, error) {
	return ParseRecord(Tokenize(line), "", n)
}

// ParseRecord turns already split fields into a Record. Fields are cleaned of
// all whitespace before use.
func ParseRecord(fields []string, source string, line int) (Record, error) {
	if len(fields) != FieldCount {
		return Record{}, &ParseError{
			Source: source,
			Line:   line,
			Err:    ErrMalformedRecord,
			Detail: fmt.Sprintf("expected %d fields, got %d", FieldCount, len(fields)),
		}
	}

	var clean [FieldCount]string
	for i, f := range fields {
		clean[i] = stripSpaces(f)
	}

	size, err := ParseSize(clean[4])
	if err != nil {
		return Record{}, &ParseError{Source: source, Line: line, Err: ErrInvalidSize, Detail: err.Error()}
	}

	return Record{
		Partition:   clean[0],
		Disk:        clean[1],
		PVID:        clean[2],
		Serial:      clean[3],
		Size:        size,
		VolumeGroup: clean[5],
		Source:      source,
		Line:        line,
	}, nil
}

// ParseSize parses a disk size. Whitespace anywhere in s is ignored.
func ParseSize(s string) (int64, error) {
	s = stripSpaces(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative", s)
	}
	return v, nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
