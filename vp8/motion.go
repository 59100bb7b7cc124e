// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

// This file implements motion vector decoding for inter-frame prediction.
// See RFC 6386 Section 17 for details.

// motionVector represents a motion vector in eighth-pixel units.
type motionVector struct {
	x, y int16
}

// mvZero is the zero motion vector.
var mvZero = motionVector{0, 0}

// defaultMVProb is the default motion vector probability table.
// RFC 6386 Section 17.2.
var defaultMVProb = [2][19]uint8{
	// Vertical (y) component probabilities.
	{162, 128, 225, 146, 172, 147, 214, 39, 156, 128, 129, 132, 75, 145, 178, 206, 239, 254, 254},
	// Horizontal (x) component probabilities.
	{164, 128, 204, 170, 119, 235, 140, 230, 228, 128, 130, 130, 74, 148, 180, 203, 236, 254, 254},
}

// mvUpdateProb is the probability of updating each MV probability.
// RFC 6386 Section 17.2.
var mvUpdateProb = [2][19]uint8{
	{237, 246, 253, 253, 254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 250, 250, 252, 254, 254},
	{231, 243, 245, 253, 254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 251, 251, 254, 254, 254},
}

// Indices into the MV probability table.
const (
	mvpIsShort = 0
	mvpSign    = 1
	mvpShort   = 2 // indices 2-8 for the short MV tree (values 0-7)
	mvpBits    = 9 // indices 9-18 for long MV bits
)

// readMVComponent reads a single motion vector component.
// RFC 6386 Section 17.1.
func (d *Decoder) readMVComponent(comp int) int16 {
	p := &d.mvProb[comp]

	// Is it a long or short MV?
	if d.fp.readBit(p[mvpIsShort]) {
		// Long form: a 10-bit magnitude, bits 0-2 read first, then
		// bits 9 down to 4, then bit 3 last - bit 3 is skipped in
		// its natural position because it's usually implied: any
		// long-form value has at least one of bits 3-9 set, so if
		// bits 4-9 all came back zero, bit 3 must be the one that's
		// set and doesn't need its own coded bit.
		var mag int16
		for i := 0; i < 3; i++ {
			if d.fp.readBit(p[mvpBits+i]) {
				mag |= 1 << uint(i)
			}
		}
		for i := 9; i > 3; i-- {
			if d.fp.readBit(p[mvpBits+i]) {
				mag |= 1 << uint(i)
			}
		}
		if mag&0x3f0 == 0 || d.fp.readBit(p[mvpBits+3]) {
			mag |= 1 << 3
		}

		// Read sign bit.
		if mag != 0 && d.fp.readBit(p[mvpSign]) {
			return -mag
		}
		return mag
	}

	// Short MV: tree decode values 0-7.
	var mag int16
	if d.fp.readBit(p[mvpShort]) {
		// 4, 5, 6, or 7
		if d.fp.readBit(p[mvpShort+2]) {
			// 6 or 7
			if d.fp.readBit(p[mvpShort+4]) {
				mag = 7
			} else {
				mag = 6
			}
		} else {
			// 4 or 5
			if d.fp.readBit(p[mvpShort+3]) {
				mag = 5
			} else {
				mag = 4
			}
		}
	} else {
		// 0, 1, 2, or 3
		if d.fp.readBit(p[mvpShort+1]) {
			// 2 or 3
			if d.fp.readBit(p[mvpShort+5]) {
				mag = 3
			} else {
				mag = 2
			}
		} else {
			// 0 or 1
			if d.fp.readBit(p[mvpShort+6]) {
				mag = 1
			} else {
				mag = 0
			}
		}
	}

	// Read sign if mag != 0.
	if mag != 0 && d.fp.readBit(p[mvpSign]) {
		return -mag
	}
	return mag
}

// readMV reads a full motion vector (both components). Components are
// coded in quarter-pel units and doubled here to the eighth-pel units
// used throughout reconstruction (RFC 6386 Section 18.2).
func (d *Decoder) readMV() motionVector {
	return motionVector{
		y: d.readMVComponent(0) << 1,
		x: d.readMVComponent(1) << 1,
	}
}

// addMV adds two motion vectors.
func addMV(a, b motionVector) motionVector {
	return motionVector{x: a.x + b.x, y: a.y + b.y}
}

// clampMV clamps a motion vector so the 16x16 (or any sub-block) reference
// area it points to stays within one macroblock's worth of margin outside
// the frame, RFC 6386 Section 18.2's mv_clamp_rect.
func (d *Decoder) clampMV(mv motionVector, mbx, mby int) motionVector {
	margin := int16(16 << 3) // 16 pixels in eighth-pixel units

	minX := int16((-mbx*16)<<3) - margin
	maxX := int16((d.mbw-1-mbx)*16<<3) + margin
	minY := int16((-mby*16)<<3) - margin
	maxY := int16((d.mbh-1-mby)*16<<3) + margin

	if mv.x < minX {
		mv.x = minX
	} else if mv.x > maxX {
		mv.x = maxX
	}
	if mv.y < minY {
		mv.y = minY
	} else if mv.y > maxY {
		mv.y = maxY
	}
	return mv
}
