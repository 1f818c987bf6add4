// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"

	"github.com/katalvlaran/mandelcalc/matrix"
)

// ToGray converts an iteration matrix into a 16-bit grayscale image.
// MAIN DESCRIPTION:
//   - Pixels that never escaped (entry == limit) are black.
//   - An escape at iteration k maps to intensity (k+1)/limit of full scale,
//     so even the fastest escapes stay distinguishable from the set.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidLimit, matrix.ErrValueOutOfRange.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGray(m *matrix.Dense, limit int32) (*image.Gray16, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGray: %w", err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("ToGray: %w", ErrInvalidLimit)
	}
	if err := matrix.ValidateRange(m, 0, limit); err != nil {
		return nil, fmt.Errorf("ToGray: %w", err)
	}

	rows, cols := m.Shape()
	img := image.NewGray16(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		src, _ := m.RowView(y)
		line := img.Pix[y*img.Stride : y*img.Stride+2*cols]
		for x, v := range src {
			var lum uint16
			if v < limit {
				lum = uint16(int64(v+1) * 0xffff / int64(limit))
			}
			// Gray16 is big-endian.
			line[2*x] = uint8(lum >> 8)
			line[2*x+1] = uint8(lum)
		}
	}

	return img, nil
}
