package inventory

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single inventory line.
const maxLine = 1 << 20

// ReadRecords reads every inventory line from r and parses it with
// Tokenize. There is no quoting: a comma always separates fields. Lines
// that are empty after stripping whitespace are skipped. The first bad line
// aborts the read and no records are returned.
func ReadRecords(r io.Reader, source string) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var records []Record
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseRecord(Tokenize(line), source, n)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return records, nil
}
