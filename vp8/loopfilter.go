// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

import "image"

// In-loop deblocking filter, RFC 6386 Section 15. Structure and constant
// layout follow dixie's loop filter (original_source/dixie_loopfilter.c)
// macroblock by macroblock: per-MB filter parameters are recomputed from
// the frame/segment/loopfilter headers and the MB's own mode and
// reference frame, then the four macroblock edges (left, inner verticals,
// top, inner horizontals) are filtered in that fixed order.

func saturateInt8(x int) int {
	if x < -128 {
		return -128
	}
	if x > 127 {
		return 127
	}
	return x
}

func saturateUint8(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// filterPixels is a strided view into a plane, used to express the
// p3..p0|q0..q3 taps the same way dixie's macros do, for both vertical
// edges (stride 1, row stride = plane stride) and horizontal edges
// (stride = plane stride, row stride 1).
type filterPixels struct {
	data   []byte
	pos    int
	stride int
}

func (f filterPixels) at(i int) int       { return int(f.data[f.pos+i*f.stride]) }
func (f filterPixels) set(i int, v uint8) { f.data[f.pos+i*f.stride] = v }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func highEdgeVariance(px filterPixels, hevThreshold int) bool {
	return abs(px.at(-2)-px.at(-1)) > hevThreshold || abs(px.at(1)-px.at(0)) > hevThreshold
}

func simpleThreshold(px filterPixels, filterLimit int) bool {
	return abs(px.at(-1)-px.at(0))*2+(abs(px.at(-2)-px.at(1))>>1) <= filterLimit
}

func normalThreshold(px filterPixels, edgeLimit, interiorLimit int) bool {
	I := interiorLimit
	return simpleThreshold(px, 2*edgeLimit+I) &&
		abs(px.at(-4)-px.at(-3)) <= I && abs(px.at(-3)-px.at(-2)) <= I &&
		abs(px.at(-2)-px.at(-1)) <= I && abs(px.at(3)-px.at(2)) <= I &&
		abs(px.at(2)-px.at(1)) <= I && abs(px.at(1)-px.at(0)) <= I
}

func filterCommon(px filterPixels, useOuterTaps bool) {
	a := 3 * (px.at(0) - px.at(-1))
	if useOuterTaps {
		a += saturateInt8(px.at(-2) - px.at(1))
	}
	a = saturateInt8(a)

	f1 := a + 4
	if f1 > 127 {
		f1 = 127
	}
	f1 >>= 3
	f2 := a + 3
	if f2 > 127 {
		f2 = 127
	}
	f2 >>= 3

	px.set(-1, saturateUint8(px.at(-1)+f2))
	px.set(0, saturateUint8(px.at(0)-f1))

	if !useOuterTaps {
		a = (f1 + 1) >> 1
		px.set(-2, saturateUint8(px.at(-2)+a))
		px.set(1, saturateUint8(px.at(1)-a))
	}
}

func filterMBEdgePixels(px filterPixels) {
	w := saturateInt8(saturateInt8(px.at(-2)-px.at(1)) + 3*(px.at(0)-px.at(-1)))

	a := (27*w + 63) >> 7
	px.set(-1, saturateUint8(px.at(-1)+a))
	px.set(0, saturateUint8(px.at(0)-a))

	a = (18*w + 63) >> 7
	px.set(-2, saturateUint8(px.at(-2)+a))
	px.set(1, saturateUint8(px.at(1)-a))

	a = (9*w + 63) >> 7
	px.set(-3, saturateUint8(px.at(-3)+a))
	px.set(2, saturateUint8(px.at(2)-a))
}

// filterMBEdgeRun filters a run of `count` taps along a macroblock or subblock edge,
// one position `stride` apart, with rows spaced `rowStride` apart. For a
// vertical edge stride is 1 and rowStride is the plane stride; for a
// horizontal edge stride is the plane stride and rowStride is 1.
func filterMBEdgeRun(data []byte, pos, stride, rowStride, count, edgeLimit, interiorLimit, hevThreshold int) {
	for i := 0; i < count; i++ {
		px := filterPixels{data: data, pos: pos, stride: stride}
		if normalThreshold(px, edgeLimit, interiorLimit) {
			if highEdgeVariance(px, hevThreshold) {
				filterCommon(px, true)
			} else {
				filterMBEdgePixels(px)
			}
		}
		pos += rowStride
	}
}

func filterSubblockEdgeRun(data []byte, pos, stride, rowStride, count, edgeLimit, interiorLimit, hevThreshold int) {
	for i := 0; i < count; i++ {
		px := filterPixels{data: data, pos: pos, stride: stride}
		if normalThreshold(px, edgeLimit, interiorLimit) {
			filterCommon(px, highEdgeVariance(px, hevThreshold))
		}
		pos += rowStride
	}
}

func filterEdgeSimpleRun(data []byte, pos, stride, rowStride, count, filterLimit int) {
	for i := 0; i < count; i++ {
		px := filterPixels{data: data, pos: pos, stride: stride}
		if simpleThreshold(px, filterLimit) {
			filterCommon(px, true)
		}
		pos += rowStride
	}
}

// filterParams is the edge/interior limit and high-edge-variance
// threshold for one macroblock, computed once per MB per
// calculateFilterParameters.
type filterParams struct {
	edgeLimit     int
	interiorLimit int
	hevThreshold  int
}

// calculateFilterParameters derives the per-macroblock filter strength
// from the frame-level loop filter level, segment adjustment, and the
// mode/reference-frame delta, RFC 6386 Section 15.2.
func calculateFilterParameters(lf *loopFilterHeader, seg *segmentHeader, isKeyframe bool, mb *mbInfo) filterParams {
	filterLevel := lf.level

	if seg.enabled {
		if !seg.absValues {
			filterLevel += int(seg.lfLevel[mb.segmentID])
		} else {
			filterLevel = int(seg.lfLevel[mb.segmentID])
		}
	}

	if lf.deltaEnabled {
		filterLevel += int(lf.refDelta[mb.refFrame])

		switch {
		case mb.refFrame == refFrameIntra:
			if mb.yMode == predBPred {
				filterLevel += int(lf.modeDelta[0])
			}
		case mb.yMode == mvModeZero:
			filterLevel += int(lf.modeDelta[1])
		case mb.yMode == mvModeSplit:
			filterLevel += int(lf.modeDelta[3])
		default:
			filterLevel += int(lf.modeDelta[2])
		}
	}

	if filterLevel > 63 {
		filterLevel = 63
	} else if filterLevel < 0 {
		filterLevel = 0
	}

	interiorLimit := filterLevel
	if lf.sharpness != 0 {
		shift := 1
		if lf.sharpness > 4 {
			shift = 2
		}
		interiorLimit >>= uint(shift)
		if max := 9 - lf.sharpness; interiorLimit > max {
			interiorLimit = max
		}
	}
	if interiorLimit < 1 {
		interiorLimit = 1
	}

	hevThreshold := 0
	if filterLevel >= 15 {
		hevThreshold = 1
	}
	if filterLevel >= 40 {
		hevThreshold++
	}
	if filterLevel >= 20 && !isKeyframe {
		hevThreshold++
	}

	return filterParams{edgeLimit: filterLevel, interiorLimit: interiorLimit, hevThreshold: hevThreshold}
}

// filterSubblocks reports whether a macroblock's internal 4x4 edges need
// filtering. This is driven by the actual decoded coefficient mask, not
// the bitstream's skip flag: a macroblock can have skip_coeff clear but
// still decode to all-zero coefficients, in which case its inner edges
// are left unfiltered unless it is a SPLITMV or B_PRED macroblock, whose
// inner edges are always filtered.
func filterSubblocks(mb *mbInfo) bool {
	return mb.eobMask != 0 || mb.yMode == mvModeSplit || mb.yMode == predBPred
}

// loopFilterMBNormal filters one macroblock's edges directly into the
// reconstructed frame's planes, using RFC 6386's "normal" (non-simple)
// filter on all three planes.
func loopFilterMBNormal(f *image.YCbCr, mbx, mby int, mb *mbInfo, p filterParams) {
	if p.edgeLimit == 0 {
		return
	}
	yStride, uvStride := f.YStride, f.CStride
	yPos := f.YOffset(mbx*16, mby*16)
	uPos := f.COffset(mbx*16, mby*16)

	if mbx > 0 {
		filterMBEdgeRun(f.Y, yPos, 1, yStride, 16, p.edgeLimit+2, p.interiorLimit, p.hevThreshold)
		filterMBEdgeRun(f.Cb, uPos, 1, uvStride, 8, p.edgeLimit+2, p.interiorLimit, p.hevThreshold)
		filterMBEdgeRun(f.Cr, uPos, 1, uvStride, 8, p.edgeLimit+2, p.interiorLimit, p.hevThreshold)
	}

	if filterSubblocks(mb) {
		filterSubblockEdgeRun(f.Y, yPos+4, 1, yStride, 16, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Y, yPos+8, 1, yStride, 16, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Y, yPos+12, 1, yStride, 16, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Cb, uPos+4, 1, uvStride, 8, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Cr, uPos+4, 1, uvStride, 8, p.edgeLimit, p.interiorLimit, p.hevThreshold)
	}

	if mby > 0 {
		filterMBEdgeRun(f.Y, yPos, yStride, 1, 16, p.edgeLimit+2, p.interiorLimit, p.hevThreshold)
		filterMBEdgeRun(f.Cb, uPos, uvStride, 1, 8, p.edgeLimit+2, p.interiorLimit, p.hevThreshold)
		filterMBEdgeRun(f.Cr, uPos, uvStride, 1, 8, p.edgeLimit+2, p.interiorLimit, p.hevThreshold)
	}

	if filterSubblocks(mb) {
		filterSubblockEdgeRun(f.Y, yPos+4*yStride, yStride, 1, 16, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Y, yPos+8*yStride, yStride, 1, 16, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Y, yPos+12*yStride, yStride, 1, 16, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Cb, uPos+4*uvStride, uvStride, 1, 8, p.edgeLimit, p.interiorLimit, p.hevThreshold)
		filterSubblockEdgeRun(f.Cr, uPos+4*uvStride, uvStride, 1, 8, p.edgeLimit, p.interiorLimit, p.hevThreshold)
	}
}

// loopFilterMBSimple applies RFC 6386's simple filter, which touches
// only the luma plane.
func loopFilterMBSimple(f *image.YCbCr, mbx, mby int, mb *mbInfo, p filterParams) {
	if p.edgeLimit == 0 {
		return
	}
	yStride := f.YStride
	yPos := f.YOffset(mbx*16, mby*16)

	mbLimit := (p.edgeLimit+2)*2 + p.interiorLimit
	bLimit := p.edgeLimit*2 + p.interiorLimit
	sub := filterSubblocks(mb)

	if mbx > 0 {
		filterEdgeSimpleRun(f.Y, yPos, 1, yStride, 16, mbLimit)
	}
	if sub {
		filterEdgeSimpleRun(f.Y, yPos+4, 1, yStride, 16, bLimit)
		filterEdgeSimpleRun(f.Y, yPos+8, 1, yStride, 16, bLimit)
		filterEdgeSimpleRun(f.Y, yPos+12, 1, yStride, 16, bLimit)
	}
	if mby > 0 {
		filterEdgeSimpleRun(f.Y, yPos, yStride, 1, 16, mbLimit)
	}
	if sub {
		filterEdgeSimpleRun(f.Y, yPos+4*yStride, yStride, 1, 16, bLimit)
		filterEdgeSimpleRun(f.Y, yPos+8*yStride, yStride, 1, 16, bLimit)
		filterEdgeSimpleRun(f.Y, yPos+12*yStride, yStride, 1, 16, bLimit)
	}
}

// loopFilterRow filters every macroblock in row mby, left to right. The
// caller is expected to run this one row behind reconstruction (dixie's
// delayed-row scheme) so that a macroblock's right/bottom neighbors have
// already been reconstructed, but never filtered, before this row's
// horizontal edges read across the row-below boundary.
func loopFilterRow(f *image.YCbCr, grid *mbGrid, lf *loopFilterHeader, seg *segmentHeader, isKeyframe bool, mby int) {
	for mbx := 0; mbx < grid.cols; mbx++ {
		mb := grid.mb(mbx, mby)
		p := calculateFilterParameters(lf, seg, isKeyframe, mb)
		if lf.useSimple {
			loopFilterMBSimple(f, mbx, mby, mb, p)
		} else {
			loopFilterMBNormal(f, mbx, mby, mb, p)
		}
	}
}
