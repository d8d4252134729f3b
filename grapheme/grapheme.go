package grapheme

import "github.com/npillmayer/uaxnav/segment"

// The package level functions use a default Navigator, segmenting with
// segment.Oracle and measuring with uax11.LatinContext.

// ClusterStartAt returns the start offset of the cluster containing byte
// offset pos. See Navigator.ClusterStartAt.
func ClusterStartAt(s string, pos int) int {
	return defaultNavigator.ClusterStartAt(s, pos)
}

// ClusterAt returns the cluster containing byte offset pos, or "".
func ClusterAt(s string, pos int) string {
	return defaultNavigator.ClusterAt(s, pos)
}

// ClusterLenAt returns the byte length of the cluster containing byte offset pos.
func ClusterLenAt(s string, pos int) int {
	return defaultNavigator.ClusterLenAt(s, pos)
}

// ClusterWidthAt returns the display width of the cluster containing byte
// offset pos.
func ClusterWidthAt(s string, pos int) int {
	return defaultNavigator.ClusterWidthAt(s, pos)
}

// PrevClusterStart returns the largest cluster start before byte offset pos.
// See Navigator.PrevClusterStart.
func PrevClusterStart(s string, pos int) int {
	return defaultNavigator.PrevClusterStart(s, pos)
}

// PrevCluster returns the cluster at PrevClusterStart(s, pos), or "".
func PrevCluster(s string, pos int) string {
	return defaultNavigator.PrevCluster(s, pos)
}

// NextClusterStart returns the start of the cluster following the one
// containing byte offset pos, or len(s).
func NextClusterStart(s string, pos int) int {
	return defaultNavigator.NextClusterStart(s, pos)
}

// NextCluster returns the cluster following the one containing byte offset
// pos, or "".
func NextCluster(s string, pos int) string {
	return defaultNavigator.NextCluster(s, pos)
}

// NthCluster returns cluster #n, or "".
func NthCluster(s string, n int) string {
	return defaultNavigator.NthCluster(s, n)
}

// NthClusterStart returns the start offset of cluster #n, or len(s).
func NthClusterStart(s string, n int) int {
	return defaultNavigator.NthClusterStart(s, n)
}

// NthClusterWidth returns the display width of cluster #n, or 0.
func NthClusterWidth(s string, n int) int {
	return defaultNavigator.NthClusterWidth(s, n)
}

// ClusterCount returns the number of clusters in s.
func ClusterCount(s string) int {
	return defaultNavigator.ClusterCount(s)
}

// Width returns the display width of s.
func Width(s string) int {
	return defaultNavigator.Width(s)
}

// Clusters returns a segmenter positioned before the first cluster of s.
// Successive calls to Next() step through the clusters of s from left to
// right:
//
//	seg := grapheme.Clusters(s)
//	for seg.Next() {
//	    fmt.Println(seg.Start(), seg.Text())
//	}
//
// The segmenter borrows s. It may be restarted with Init(…).
func Clusters(s string) *segment.Segmenter {
	seg := segment.NewSegmenter()
	seg.Init(s)
	return seg
}
