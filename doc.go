// Package embedgo provides an in-memory store for dense word and entity
// embeddings, with exact k-nearest-neighbor search.
//
// Embedding tables in the common whitespace-separated text format
// (one record per line: a key followed by the vector elements, as produced
// by GloVe, word2vec and friends) are streamed into an immutable Store.
// Vectors are L2-normalized at load time and can be looked up by
// string key or, through a pluggable Recoder, by integer id.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	store, err := embedgo.LoadFile(ctx, "glove.6B.50d.txt.gz")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := store.KNNSearch("king", distance.Cosine, 10, true)
//	for _, r := range results {
//		fmt.Println(r.Key, r.Distance)
//	}
//
// # Averaging
//
// Beyond lookups, a Store can average vectors over whole texts or over
// pre-tokenized documents with per-id weights (e.g. IDF):
//
//	vec := store.TextAverage("the quick brown fox", true)
//	vec := store.DocumentAverage(terms, corpus, true)
//
// # Key Features
//
//   - Streaming loader with line-precise format errors
//   - Transparent gzip/bzip2/zstd/lz4 decompression, local or S3/MinIO sources
//   - Exact brute-force k-NN with pluggable distance functions
//   - Immutable after load, safe for concurrent readers
package embedgo
