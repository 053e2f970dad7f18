// SPDX-License-Identifier: MIT
// weight_fn.go — the per-edge weight policy.

package builder

import "cmp"

// WeightFunc computes the weight of the edge src→dst. Implementations must
// be pure: the same endpoints always yield the same weight, or Build's
// determinism contract breaks.
type WeightFunc[N, E cmp.Ordered] func(src, dst N) E

// ConstWeight returns a WeightFunc labeling every edge with w.
func ConstWeight[N, E cmp.Ordered](w E) WeightFunc[N, E] {
	return func(N, N) E { return w }
}
