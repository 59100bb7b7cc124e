// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

// Intra prediction, RFC 6386 Section 12. Luma 16x16 and chroma 8x8
// blocks use the four whole-block predictors (DC/V/H/TM); luma may
// instead split into 16 4x4 sub-blocks, each predicted with one of ten
// directional predictors.

// Whole-block and sub-block predictor modes. The first four values are
// shared between the 16x16/8x8 predictors and their 4x4 equivalents
// (B_DC_PRED aliases DC_PRED, and so on) so that a neighboring whole
// block can supply context to the 4x4 mode tree without translation.
const (
	predDC = iota
	predTM
	predVE
	predHE
	predLD
	predRD
	predVR
	predVL
	predHD
	predHU
	nPred

	// predBPred is the macroblock-level Y mode meaning "use the 4x4
	// sub-block predictors below", distinct from the 10 B-mode values
	// above which are recorded per sub-block once chosen.
	predBPred = nPred
)

func clip255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// predictBlock16 fills a size x size block at dst (stride-referenced)
// using above/left border pixels, replicating RFC 6386 12.2's handling
// of missing borders (127 above, 129 left) for frame-edge blocks.
func predictBlock16(dst []byte, stride, size int, above, left []byte, aboveLeft byte, haveAbove, haveLeft bool, mode uint8) {
	switch mode {
	case predDC:
		sum, n := 0, 0
		if haveAbove {
			for i := 0; i < size; i++ {
				sum += int(above[i])
			}
			n += size
		}
		if haveLeft {
			for i := 0; i < size; i++ {
				sum += int(left[i])
			}
			n += size
		}
		var avg byte
		if n == 0 {
			avg = 128
		} else {
			avg = byte((sum + n/2) / n)
		}
		for y := 0; y < size; y++ {
			row := dst[y*stride : y*stride+size]
			for x := range row {
				row[x] = avg
			}
		}
	case predVE:
		row := make([]byte, size)
		if haveAbove {
			copy(row, above[:size])
		} else {
			for i := range row {
				row[i] = 127
			}
		}
		for y := 0; y < size; y++ {
			copy(dst[y*stride:y*stride+size], row)
		}
	case predHE:
		for y := 0; y < size; y++ {
			var v byte = 129
			if haveLeft {
				v = left[y]
			}
			row := dst[y*stride : y*stride+size]
			for x := range row {
				row[x] = v
			}
		}
	case predTM:
		al := aboveLeft
		for y := 0; y < size; y++ {
			var l int
			if haveLeft {
				l = int(left[y])
			} else {
				l = 129
			}
			row := dst[y*stride : y*stride+size]
			for x := 0; x < size; x++ {
				var a int
				if haveAbove {
					a = int(above[x])
				} else {
					a = 127
				}
				row[x] = clip255(l + a - int(al))
			}
		}
	}
}

// b4Context holds the 4 above pixels, 4 left pixels, the above-left corner and
// the 4 above-right pixels needed by the ten 4x4 sub-block predictors.
type b4Context struct {
	above      [4]byte
	left       [4]byte
	aboveLeft  byte
	aboveRight [4]byte
}

func avg3(a, b, c byte) byte {
	return byte((int(a) + 2*int(b) + int(c) + 2) >> 2)
}

func avg2(a, b byte) byte {
	return byte((int(a) + int(b) + 1) >> 1)
}

// predictSubBlock4 writes a 4x4 predicted block into dst (row-major,
// stride bytes per row) given its neighbor context and mode.
func predictSubBlock4(dst []byte, stride int, c b4Context, mode uint8) {
	A, L, P, AR := c.above, c.left, c.aboveLeft, c.aboveRight
	set := func(x, y int, v byte) { dst[y*stride+x] = v }

	switch mode {
	case predDC:
		sum := 0
		for i := 0; i < 4; i++ {
			sum += int(A[i]) + int(L[i])
		}
		avg := byte((sum + 4) >> 3)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				set(x, y, avg)
			}
		}
	case predTM:
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				set(x, y, clip255(int(L[y])+int(A[x])-int(P)))
			}
		}
	case predVE:
		e := [6]byte{P, A[0], A[1], A[2], A[3], AR[0]}
		var v [4]byte
		for x := 0; x < 4; x++ {
			v[x] = avg3(e[x], e[x+1], e[x+2])
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				set(x, y, v[x])
			}
		}
	case predHE:
		e := [5]byte{P, L[0], L[1], L[2], L[3]}
		var v [4]byte
		v[0] = avg3(e[0], e[1], e[2])
		v[1] = avg3(e[1], e[2], e[3])
		v[2] = avg3(e[2], e[3], e[4])
		v[3] = avg3(e[3], e[4], e[4])
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				set(x, y, v[y])
			}
		}
	case predLD:
		e := [8]byte{A[0], A[1], A[2], A[3], AR[0], AR[1], AR[2], AR[3]}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				i := x + y
				var v byte
				if i == 6 {
					v = avg3(e[6], e[7], e[7])
				} else {
					v = avg3(e[i], e[i+1], e[i+2])
				}
				set(x, y, v)
			}
		}
	case predRD:
		e := [9]byte{L[3], L[2], L[1], L[0], P, A[0], A[1], A[2], A[3]}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				i := 4 + x - y
				set(x, y, avg3(e[i-1], e[i], e[i+1]))
			}
		}
	case predVR:
		e := [9]byte{L[3], L[2], L[1], L[0], P, A[0], A[1], A[2], A[3]}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				i := 4 + x - y
				var v byte
				if (x-y)%2 == 0 && x >= y {
					v = avg2(e[i], e[i+1])
				} else {
					v = avg3(e[i-1], e[i], e[i+1])
				}
				set(x, y, v)
			}
		}
	case predVL:
		e := [8]byte{A[0], A[1], A[2], A[3], AR[0], AR[1], AR[2], AR[3]}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				i := x + y/2
				var v byte
				if y%2 == 0 {
					v = avg2(e[i], e[i+1])
				} else if i+2 < len(e) {
					v = avg3(e[i], e[i+1], e[i+2])
				} else {
					v = avg3(e[i], e[i+1], e[i+1])
				}
				set(x, y, v)
			}
		}
	case predHD:
		e := [9]byte{L[3], L[2], L[1], L[0], P, A[0], A[1], A[2], A[3]}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				i := 8 - (2*y + x)
				var v byte
				if (2*y+x)%2 == 0 {
					v = avg2(e[i-1], e[i])
				} else {
					v = avg3(e[i-2], e[i-1], e[i])
				}
				set(x, y, v)
			}
		}
	case predHU:
		e := [4]byte{L[0], L[1], L[2], L[3]}
		lookup := func(i int) byte {
			if i >= 4 {
				return e[3]
			}
			return e[i]
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				i := 2*y + x
				var v byte
				switch {
				case i >= 6:
					v = e[3]
				case i%2 == 0:
					v = avg2(lookup(i/2), lookup(i/2+1))
				default:
					v = avg3(lookup(i/2), lookup(i/2+1), lookup(i/2+2))
				}
				set(x, y, v)
			}
		}
	}
}
