package metrics

// SelectBest returns the post with the highest power score. Comparison is
// strict, so ties keep the first-encountered post. The second return is
// false when the input is empty.
func SelectBest(posts []NormalizedPost, power func(NormalizedPost) int64) (NormalizedPost, bool) {
	if len(posts) == 0 {
		return NormalizedPost{}, false
	}
	best := posts[0]
	bestScore := power(best)
	for _, p := range posts[1:] {
		if s := power(p); s > bestScore {
			best = p
			bestScore = s
		}
	}
	return best, true
}
