package match

// Stats summarizes a segmentation result.
type Stats struct {
	Segments     int `json:"segments" yaml:"segments"`
	Matches      int `json:"matches" yaml:"matches"`
	MatchedBytes int `json:"matchedBytes" yaml:"matchedBytes"`
	TotalBytes   int `json:"totalBytes" yaml:"totalBytes"`
}

// Summarize counts the matches and matched bytes in segs.
func Summarize(segs []Segment) Stats {
	st := Stats{Segments: len(segs)}
	for _, seg := range segs {
		st.TotalBytes += len(seg.Text)
		if seg.IsMatch {
			st.Matches++
			st.MatchedBytes += len(seg.Text)
		}
	}
	return st
}

// Coverage returns the fraction of the text covered by matches, in [0, 1].
func (st Stats) Coverage() float64 {
	if st.TotalBytes == 0 {
		return 0
	}
	return float64(st.MatchedBytes) / float64(st.TotalBytes)
}
