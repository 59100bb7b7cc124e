// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

// Inverse transforms, RFC 6386 Section 14.3/14.4: the 4x4 inverse DCT
// used to add residual to every Y/U/V block, and the inverse
// Walsh-Hadamard transform used to spread a macroblock's 16 second-order
// DC coefficients (the Y2 block) back into the first coefficient of
// each of its 16 Y blocks.

// inverseWHT4x4 implements vp8_dixie_walsh: two passes of a 4-point
// Hadamard butterfly, columns then rows, with the row pass rounding by
// (x+3)>>3.
func inverseWHT4x4(input *[16]int16, output *[16]int16) {
	var tmp [16]int32

	for i := 0; i < 4; i++ {
		a1 := int32(input[i]) + int32(input[i+12])
		b1 := int32(input[i+4]) + int32(input[i+8])
		c1 := int32(input[i+4]) - int32(input[i+8])
		d1 := int32(input[i]) - int32(input[i+12])

		tmp[i] = a1 + b1
		tmp[i+4] = c1 + d1
		tmp[i+8] = a1 - b1
		tmp[i+12] = d1 - c1
	}

	for i := 0; i < 4; i++ {
		r := tmp[i*4 : i*4+4]
		a1 := r[0] + r[3]
		b1 := r[1] + r[2]
		c1 := r[1] - r[2]
		d1 := r[0] - r[3]

		a2 := a1 + b1
		b2 := c1 + d1
		c2 := a1 - b1
		d2 := d1 - c1

		output[i*4+0] = int16((a2 + 3) >> 3)
		output[i*4+1] = int16((b2 + 3) >> 3)
		output[i*4+2] = int16((c2 + 3) >> 3)
		output[i*4+3] = int16((d2 + 3) >> 3)
	}
}

// idctColumns is the column pass of the 4x4 IDCT (idct_columns in
// idct_add.c), applied before idctAddResidual adds the row pass
// straight into the reconstructed pixels.
func idctColumns(input *[16]int16, output *[16]int32) {
	for i := 0; i < 4; i++ {
		ip0 := int32(input[i])
		ip4 := int32(input[i+4])
		ip8 := int32(input[i+8])
		ip12 := int32(input[i+12])

		a1 := ip0 + ip8
		b1 := ip0 - ip8

		temp1 := (ip4 * sinpi8sqrt2) >> 16
		temp2 := ip12 + ((ip12 * cospi8sqrt2minus1) >> 16)
		c1 := temp1 - temp2

		temp1 = ip4 + ((ip4 * cospi8sqrt2minus1) >> 16)
		temp2 = (ip12 * sinpi8sqrt2) >> 16
		d1 := temp1 + temp2

		output[i] = a1 + d1
		output[i+12] = a1 - d1
		output[i+4] = b1 + c1
		output[i+8] = b1 - c1
	}
}

// idctAddResidual implements vp8_dixie_idct_add: runs the row pass of
// the IDCT over idctColumns' output and adds the result directly into
// the predicted pixels at recon (stride bytes per row), clamping to
// [0,255].
func idctAddResidual(recon []byte, stride int, predict []byte, coeffs *[16]int16) {
	var tmp [16]int32
	idctColumns(coeffs, &tmp)

	for i := 0; i < 4; i++ {
		c := tmp[i*4 : i*4+4]
		a1 := c[0] + c[2]
		b1 := c[0] - c[2]

		temp1 := (c[1] * sinpi8sqrt2) >> 16
		temp2 := c[3] + ((c[3] * cospi8sqrt2minus1) >> 16)
		c1 := temp1 - temp2

		temp1 = c[1] + ((c[1] * cospi8sqrt2minus1) >> 16)
		temp2 = (c[3] * sinpi8sqrt2) >> 16
		d1 := temp1 + temp2

		row := recon[i*stride : i*stride+4]
		pred := predict[i*stride : i*stride+4]
		row[0] = clip255(int(pred[0]) + int((a1+d1+4)>>3))
		row[3] = clip255(int(pred[3]) + int((a1-d1+4)>>3))
		row[1] = clip255(int(pred[1]) + int((b1+c1+4)>>3))
		row[2] = clip255(int(pred[2]) + int((b1-c1+4)>>3))
	}
}

// idctAddDCOnly is the common fast path for a block whose only nonzero
// coefficient is coeffs[0]: every output pixel gets the same
// (coeffs[0]+4)>>3 delta.
func idctAddDCOnly(recon []byte, stride int, predict []byte, dc int16) {
	delta := int(dc+4) >> 3
	for y := 0; y < 4; y++ {
		row := recon[y*stride : y*stride+4]
		pred := predict[y*stride : y*stride+4]
		for x := 0; x < 4; x++ {
			row[x] = clip255(int(pred[x]) + delta)
		}
	}
}
