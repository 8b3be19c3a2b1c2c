package slicesx

// Chunks splits ts into consecutive chunks of chunkSize elements. The last chunk may be shorter.
// A chunkSize below 1 yields a single chunk holding all elements.
func Chunks[S ~[]E, E any](ts S, chunkSize int) [][]E {
	cs := [][]E{}
	if chunkSize < 1 {
		chunkSize = len(ts)
	}
	for len(ts) > 0 {
		copySize := min(chunkSize, len(ts))
		chunk := make([]E, copySize)
		copy(chunk, ts[:copySize])
		cs = append(cs, chunk)
		ts = ts[copySize:]
	}
	return cs
}
