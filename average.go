package embedgo

import (
	"strings"

	"github.com/hupe1980/embedgo/distance"
	"github.com/hupe1980/embedgo/internal/math32"
)

// Term is one (id, quantity) pair of a document, e.g. a word id and its
// occurrence count.
type Term struct {
	ID  uint32
	Qty float32
}

// TextAverage returns the average of the vectors of all known whitespace-
// separated tokens in text. The divisor is the number of matched tokens;
// unknown tokens contribute nothing, neither to the sum nor to the divisor.
// If no token matches, the zero vector is returned.
//
// When normalize is true the result is L2-normalized; a result with a norm
// below distance.Epsilon (in particular the all-miss zero vector) is
// returned as is. The returned slice is freshly allocated.
func (s *Store) TextAverage(text string, normalize bool) []float32 {
	res := make([]float32, s.dim)

	var matched int
	for _, token := range strings.Fields(text) {
		vec, ok := s.byKey[token]
		if !ok {
			continue
		}

		math32.AddInPlace(res, vec)
		matched++
	}

	if matched > 0 {
		math32.ScaleInPlace(res, 1/float32(matched))
	}

	if normalize {
		distance.NormalizeL2InPlace(res)
	}

	return res
}

// DocumentAverage returns the weighted average of the vectors of all ids in
// terms that are present in the id index. Each matched vector enters the sum
// scaled by w.Weight(id) * Qty; a nil Weighter weighs every id as 1. The
// divisor is the number of matched ids, regardless of the weights; unmatched
// ids contribute nothing. If no id matches, the zero vector is returned.
//
// When normalize is true the result is L2-normalized; a result with a norm
// below distance.Epsilon is returned as is. The returned slice is freshly
// allocated.
func (s *Store) DocumentAverage(terms []Term, w Weighter, normalize bool) []float32 {
	res := make([]float32, s.dim)

	var matched int
	for _, term := range terms {
		vec, ok := s.byID[term.ID]
		if !ok {
			continue
		}

		weight := float32(1)
		if w != nil {
			weight = w.Weight(term.ID)
		}

		math32.AddScaledInPlace(res, vec, weight*term.Qty)
		matched++
	}

	if matched > 0 {
		math32.ScaleInPlace(res, 1/float32(matched))
	}

	if normalize {
		distance.NormalizeL2InPlace(res)
	}

	return res
}
