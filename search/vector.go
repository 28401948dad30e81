package search

// dotProduct computes the dot product of two vectors. Catalog and query
// vectors are unit-normalized before they reach the ranker, so this equals
// their cosine similarity. Mismatched lengths score zero.
func dotProduct(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
