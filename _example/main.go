package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hupe1980/embedgo"
	"github.com/hupe1980/embedgo/distance"
	"github.com/hupe1980/embedgo/testutil"
)

func main() {
	seed := int64(4711)
	dim := 64
	size := 50000
	k := 10

	table := testutil.Table(testutil.NewRNG(seed).UniformRangeVectors(size, dim))

	fmt.Println("--- Load ---")
	fmt.Println("Dimension:", dim)
	fmt.Println("Size:", size)

	start := time.Now()

	store, err := embedgo.Load(context.Background(), strings.NewReader(table))
	if err != nil {
		log.Fatal(err)
	}

	end := time.Since(start)

	fmt.Printf("Keys: %d\n", store.Len())
	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	fmt.Println("--- KNN ---")

	start = time.Now()

	result, err := store.KNNSearch("key42", distance.Cosine, k, true)
	if err != nil {
		log.Fatal(err)
	}

	end = time.Since(start)

	for _, r := range result {
		fmt.Printf("Key: %s, Distance: %.4f\n", r.Key, r.Distance)
	}

	fmt.Printf("Seconds: %.8f\n", end.Seconds())
}
