package match

// DefaultThreshold is the minimum Similarity Closest accepts.
const DefaultThreshold = 0.6

// Closest returns the candidate most similar to name, if any reaches threshold.
// Ties keep the earlier candidate.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	var (
		best      string
		bestScore = -1.0
	)
	for _, c := range candidates {
		if score := Similarity(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < threshold {
		return "", false
	}
	return best, true
}
