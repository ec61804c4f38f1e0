package embedgo

import (
	"github.com/hupe1980/embedgo/distance"
	"github.com/hupe1980/embedgo/internal/queue"
)

// SearchResult represents a key matched by a k-NN search.
type SearchResult struct {
	Key      string
	Distance float32
}

// KNNSearch returns the up to k nearest stored keys to the vector of the
// query key, ordered by ascending distance. Every stored vector is compared
// (exact search). The order of equally distant keys is unspecified.
//
// An unknown query key or k == 0 yields an empty result; a negative k is an
// error. If excludeSelf is true, the query key itself is not reported.
func (s *Store) KNNSearch(key string, dist distance.Func, k int, excludeSelf bool) ([]SearchResult, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}

	if k == 0 {
		return nil, nil
	}

	query, ok := s.byKey[key]
	if !ok {
		return nil, nil
	}

	topCandidates := queue.NewMax(min(k, len(s.byKey)))

	for candidate, vec := range s.byKey {
		if excludeSelf && candidate == key {
			continue
		}

		d := dist(query, vec)

		if topCandidates.Len() < k {
			topCandidates.Push(queue.Item{Key: candidate, Distance: d})
			continue
		}

		if worst, _ := topCandidates.Top(); d < worst.Distance {
			topCandidates.Pop()
			topCandidates.Push(queue.Item{Key: candidate, Distance: d})
		}
	}

	results := make([]SearchResult, topCandidates.Len())
	for i := topCandidates.Len() - 1; i >= 0; i-- {
		item, _ := topCandidates.Pop()
		results[i] = SearchResult{Key: item.Key, Distance: item.Distance}
	}

	s.logger.LogSearch(key, k, len(results))

	return results, nil
}
