package slicesx

func Filter[S ~[]E, E any](ts S, accept func(t E) bool) []E {
	var fts []E
	for _, t := range ts {
		if accept(t) {
			fts = append(fts, t)
		}
	}
	return fts
}

// Flatten concatenates all slices of tss.
func Flatten[S ~[]E, E any](tss []S) []E {
	var n int
	for _, ts := range tss {
		n += len(ts)
	}
	fts := make([]E, 0, n)
	for _, ts := range tss {
		fts = append(fts, ts...)
	}
	return fts
}
