package embedgo

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// record is one parsed table line: a key followed by the vector elements of
// the line. A blank record has an empty key.
type record struct {
	key string
	vec []float32
}

// parseRecord splits one table line into a key and its vector elements.
//
// Fields are separated by runs of whitespace. An empty line, or a line that
// starts with whitespace (which would make the key empty), yields a blank
// record. Element parse failures are fatal and carry the line number and the
// 1-based element position.
func parseRecord(line string, lineNum int) (record, error) {
	if line == "" {
		return record{}, nil
	}

	if r, _ := utf8.DecodeRuneInString(line); unicode.IsSpace(r) {
		return record{}, nil
	}

	fields := strings.Fields(line)

	vec := make([]float32, len(fields)-1)
	for i, tok := range fields[1:] {
		val, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return record{}, &FormatError{
				Line:  lineNum,
				cause: &ErrInvalidValue{Index: i + 1, Literal: tok, cause: err},
			}
		}

		vec[i] = float32(val)
	}

	return record{key: fields[0], vec: vec}, nil
}
