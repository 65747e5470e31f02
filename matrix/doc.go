// Package matrix provides the dense, row-major float64 matrix used for
// distance tables, and the in-place Floyd–Warshall closure over it.
//
// +Inf denotes "no path". Values are otherwise unrestricted: negative
// entries are legal, since Floyd–Warshall tolerates negative edge weights.
package matrix
