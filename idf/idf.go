// Package idf provides document-frequency statistics for weighting document
// averages, backed by roaring posting bitmaps.
package idf

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Corpus accumulates document-frequency statistics over integer word ids.
// Build it single-threaded with AddDocument; afterwards it is safe for
// concurrent readers. Corpus satisfies the embedgo.Weighter interface.
type Corpus struct {
	postings map[uint32]*roaring.Bitmap
	docs     uint32
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{
		postings: make(map[uint32]*roaring.Bitmap),
	}
}

// AddDocument records one document given by its word ids. Repeated ids
// within one document count once.
func (c *Corpus) AddDocument(ids ...uint32) {
	docID := c.docs
	c.docs++

	for _, id := range ids {
		bm, ok := c.postings[id]
		if !ok {
			bm = roaring.New()
			c.postings[id] = bm
		}

		bm.Add(docID)
	}
}

// NumDocs returns the number of documents added.
func (c *Corpus) NumDocs() int { return int(c.docs) }

// DocFreq returns the number of documents containing id.
func (c *Corpus) DocFreq(id uint32) int {
	bm, ok := c.postings[id]
	if !ok {
		return 0
	}

	return int(bm.GetCardinality())
}

// Weight returns the BM25-style inverse document frequency of id:
// ln(1 + (N - n + 0.5) / (n + 0.5)) for N documents of which n contain id.
// Ids absent from the corpus weigh zero.
func (c *Corpus) Weight(id uint32) float32 {
	n := float64(c.DocFreq(id))
	if n == 0 {
		return 0
	}

	total := float64(c.docs)

	return float32(math.Log(1 + (total-n+0.5)/(n+0.5)))
}
