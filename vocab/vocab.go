// Package vocab provides a plain vocabulary table mapping words to dense
// integer ids.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Options configures Load behavior.
type Options struct {
	// MinCount drops words whose count column is below the threshold.
	// Requires a table with a count column; values <= 0 keep all words.
	MinCount int
}

// Vocabulary maps words to dense uint32 ids, assigned in insertion order
// starting at 0. It satisfies the embedgo.Recoder interface.
type Vocabulary struct {
	ids   map[string]uint32
	words []string
}

// New creates a vocabulary from the given words. Duplicates keep their
// first id.
func New(words ...string) *Vocabulary {
	v := &Vocabulary{
		ids: make(map[string]uint32, len(words)),
	}

	for _, w := range words {
		v.add(w)
	}

	return v
}

// Load reads a vocabulary table: one word per line, where the first field
// of a line is the word and an optional second field is its count. Blank
// lines are skipped; duplicate words keep their first id.
func Load(r io.Reader, optFns ...func(*Options)) (*Vocabulary, error) {
	var opts Options
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	v := &Vocabulary{
		ids: make(map[string]uint32),
	}

	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if opts.MinCount > 0 {
			if len(fields) < 2 {
				return nil, fmt.Errorf("vocab: line %d: missing count column", line)
			}

			count, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("vocab: line %d: can't parse count %q: %w", line, fields[1], err)
			}

			if count < opts.MinCount {
				continue
			}
		}

		v.add(fields[0])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}

	return v, nil
}

func (v *Vocabulary) add(word string) {
	if _, ok := v.ids[word]; ok {
		return
	}

	v.ids[word] = uint32(len(v.words))
	v.words = append(v.words, word)
}

// WordID returns the id assigned to word, and whether word is known.
func (v *Vocabulary) WordID(word string) (uint32, bool) {
	id, ok := v.ids[word]
	return id, ok
}

// Word returns the word assigned to id, and whether id is in range.
func (v *Vocabulary) Word(id uint32) (string, bool) {
	if int(id) >= len(v.words) {
		return "", false
	}

	return v.words[id], true
}

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }
