package grapheme

// Ordinal access scans the text from its start on every call. There is no
// index kept between calls, so every operation is O(len(s)).

// each calls f for the clusters of s from left to right, together with their
// ordinal number and start offset, until f returns false.
func (nav *Navigator) each(s string, f func(n, start int, cluster string) bool) {
	for n, start := 0, 0; start < len(s); n++ {
		cluster := nav.clusterFrom(s, start)
		if cluster == "" { // broken oracle; do not loop forever
			T().Errorf("grapheme: boundary oracle returned empty cluster at %d", start)
			return
		}
		if !f(n, start, cluster) {
			return
		}
		start += len(cluster)
	}
}

// nth finds cluster #n. It returns len(s) and "" if there are less than n+1
// clusters.
func (nav *Navigator) nth(s string, n int) (int, string) {
	pos, grphm := len(s), ""
	if n < 0 {
		return pos, grphm
	}
	nav.each(s, func(i, start int, cluster string) bool {
		if i == n {
			pos, grphm = start, cluster
			return false
		}
		return true
	})
	return pos, grphm
}

// NthCluster returns cluster #n (counting from 0), or "" if n is out of range.
func (nav *Navigator) NthCluster(s string, n int) string {
	_, grphm := nav.nth(s, n)
	return grphm
}

// NthClusterStart returns the start offset of cluster #n (counting from 0),
// or len(s) if n is out of range.
func (nav *Navigator) NthClusterStart(s string, n int) int {
	pos, _ := nav.nth(s, n)
	return pos
}

// NthClusterWidth returns the display width of cluster #n (counting from 0),
// or 0 if n is out of range.
func (nav *Navigator) NthClusterWidth(s string, n int) int {
	_, grphm := nav.nth(s, n)
	return nav.width(grphm)
}

// ClusterCount returns the number of grapheme clusters in s.
func (nav *Navigator) ClusterCount(s string) int {
	cnt := 0
	nav.each(s, func(int, int, string) bool {
		cnt++
		return true
	})
	return cnt
}

// Width returns the display width of s, i.e. the sum of the widths of its
// clusters.
func (nav *Navigator) Width(s string) int {
	w := 0
	nav.each(s, func(_, _ int, cluster string) bool {
		w += nav.width(cluster)
		return true
	})
	return w
}
