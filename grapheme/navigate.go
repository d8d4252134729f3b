package grapheme

// ClusterStartAt returns the start offset of the cluster containing byte
// offset pos. Offsets inside a multi-byte code-point belong to the cluster of
// the code-point. Returns 0 for pos ≤ 0 and len(s) for pos ≥ len(s).
func (nav *Navigator) ClusterStartAt(s string, pos int) int {
	c := nav.cursor(s, pos)
	defer c.release()
	return c.clusterStart()
}

// NextClusterStart returns the start offset of the cluster following the one
// containing byte offset pos, or len(s) if there is none.
func (nav *Navigator) NextClusterStart(s string, pos int) int {
	c := nav.cursor(s, pos)
	defer c.release()
	return c.nextClusterStart()
}

// PrevClusterStart returns the largest cluster start before byte offset pos,
// or 0 if there is none. An offset inside a code-point is rounded up to the
// next code-point first. If pos is inside a cluster, i.e. not at its start,
// the start of that cluster is returned:
//
//	PrevClusterStart("ab", 1)        // => 0
//	PrevClusterStart("ae\u0301", 2) // => 1
func (nav *Navigator) PrevClusterStart(s string, pos int) int {
	c := nav.cursor(s, pos)
	defer c.release()
	start := c.prevClusterStart()
	T().Debugf("grapheme: previous cluster start for %d is %d", pos, start)
	return start
}
