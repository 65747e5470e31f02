// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) closure with deterministic loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.
//   - Negative cycles are NOT detected: the result is understated on them.

package matrix

import (
	"fmt"
	"math"
)

// FloydWarshall computes all-pairs shortest path distances in-place on d.
//
// For k, i, j in 0..n-1 (that order): d[i][j] = min(d[i][j], d[i][k] + d[k][j]).
// Legs equal to +Inf are skipped, so no +Inf arithmetic happens; only strict
// improvements are written.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return fmt.Errorf("FloydWarshall: %w", ErrNilMatrix)
	}
	if d.r != d.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", d.r, d.c, ErrNonSquare)
	}

	n := d.r
	data := d.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
