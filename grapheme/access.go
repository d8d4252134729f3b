package grapheme

// ClusterAt returns the grapheme cluster containing byte offset pos, or ""
// if pos ≥ len(s).
func (nav *Navigator) ClusterAt(s string, pos int) string {
	start := nav.ClusterStartAt(s, pos)
	if start >= len(s) {
		return ""
	}
	return nav.clusterFrom(s, start)
}

// ClusterLenAt returns the byte length of the cluster containing byte offset
// pos, or 0 if pos ≥ len(s).
func (nav *Navigator) ClusterLenAt(s string, pos int) int {
	return len(nav.ClusterAt(s, pos))
}

// ClusterWidthAt returns the display width of the cluster containing byte
// offset pos, or 0 if pos ≥ len(s).
func (nav *Navigator) ClusterWidthAt(s string, pos int) int {
	return nav.width(nav.ClusterAt(s, pos))
}

// PrevCluster returns the cluster starting at PrevClusterStart(s, pos), or ""
// if pos ≤ 0.
func (nav *Navigator) PrevCluster(s string, pos int) string {
	if pos <= 0 {
		return ""
	}
	return nav.ClusterAt(s, nav.PrevClusterStart(s, pos))
}

// NextCluster returns the cluster following the one containing byte offset
// pos, or "" if there is none.
func (nav *Navigator) NextCluster(s string, pos int) string {
	if pos >= len(s) {
		return ""
	}
	start := nav.NextClusterStart(s, pos)
	if start >= len(s) {
		return ""
	}
	return nav.clusterFrom(s, start)
}

func (nav *Navigator) width(cluster string) int {
	if cluster == "" {
		return 0
	}
	return nav.widths.ClusterWidth(cluster)
}

// clusterFrom returns the cluster starting at start as a sub-string of s.
func (nav *Navigator) clusterFrom(s string, start int) string {
	l := len(nav.boundaries.FirstCluster(s[start:]))
	if start+l > len(s) {
		l = len(s) - start
	}
	return s[start : start+l]
}
