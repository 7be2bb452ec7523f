// SPDX-License-Identifier: MIT

package implicit

import "math/bits"

// isPowerOfTwo reports whether v is a positive power of two and, if so,
// the position of its single set bit.
func isPowerOfTwo(v int) (bool, uint) {
	if v <= 0 || v&(v-1) != 0 {
		return false, 0
	}

	return true, uint(bits.TrailingZeros(uint(v)))
}

// checkAcceleration enables shift/mask decoding of vertex ids when every
// non-flat dimension is a power of two.
func (g *Grid) checkAcceleration() {
	switch g.dimensionality {
	case 3:
		okX, msbX := isPowerOfTwo(g.dimensions[0])
		okY, msbY := isPowerOfTwo(g.dimensions[1])
		okZ, _ := isPowerOfTwo(g.dimensions[2])
		if !okX || !okY || !okZ {
			return
		}
		g.mod = [2]int{g.dimensions[0] - 1, g.dimensions[0]*g.dimensions[1] - 1}
		g.div = [2]uint{msbX, msbX + msbY}
	case 2:
		okI, msbI := isPowerOfTwo(g.ldims[0])
		okJ, _ := isPowerOfTwo(g.ldims[1])
		if !okI || !okJ {
			return
		}
		g.mod[0] = g.ldims[0] - 1
		g.div[0] = msbI
	default:
		return
	}

	g.accelerated = true
	g.log.WithField("dimensions", g.dimensions).Info("power-of-two grid, accelerated vertex decoding enabled")
}
