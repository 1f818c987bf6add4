// SPDX-License-Identifier: MIT

package mandel

// escapeRadius2 is |z|² past which the orbit is known to diverge (|z| > 2).
const escapeRadius2 float32 = 4.0

// escapeStep tests z = zx + i·zy and, unless it escaped, advances it one step
// of z ← z² + c. Every product is converted to float32 explicitly: the
// conversion forces rounding, so the compiler may not fuse multiply-adds and
// all strategies stay bit-identical on every GOARCH.
func escapeStep(zx, zy, cx, cy float32) (nzx, nzy float32, escaped bool) {
	zx2 := float32(zx * zx)
	zy2 := float32(zy * zy)
	if zx2+zy2 > escapeRadius2 {
		return zx, zy, true
	}

	return zx2 - zy2 + cx, float32(2*zx*zy) + cy, false
}

// escapeTime runs the recurrence for a single point, seeded with z = c.
// It returns the iteration index of the escape, or limit when none happened.
func escapeTime(cx, cy float32, limit int32) int32 {
	zx, zy := cx, cy
	for it := int32(0); it < limit; it++ {
		var escaped bool
		if zx, zy, escaped = escapeStep(zx, zy, cx, cy); escaped {
			return it
		}
	}

	return limit
}

// evalSpan evaluates a contiguous run of pixels that share one imaginary
// coordinate y. cells must be prefilled with limit; xs holds the real
// coordinates; zx and zy are scratch buffers of the same length.
//
// Each iteration step visits only live cells (still == limit). A cell that
// escapes gets the step index written once and is never touched again, and
// the loop stops as soon as the live count hits zero.
func evalSpan(cells []int32, xs []float32, y float32, zx, zy []float32, limit int32) {
	n := len(cells)
	xs, zx, zy = xs[:n], zx[:n], zy[:n]
	copy(zx, xs)
	for i := range zy {
		zy[i] = y
	}

	live := n
	for it := int32(0); it < limit && live > 0; it++ {
		for i, v := range cells {
			if v != limit {
				continue
			}
			nx, ny, escaped := escapeStep(zx[i], zy[i], xs[i], y)
			if escaped {
				cells[i] = it
				live--
				continue
			}
			zx[i], zy[i] = nx, ny
		}
	}
}
