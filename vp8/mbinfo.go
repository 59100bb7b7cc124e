// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

// Per-macroblock decoded state, kept in a flat row-major grid with one
// extra border row above and one extra border column to the left so
// that neighbor lookups for the first row/column never need a bounds
// check (mirrors dixie's mb_info_rows bordered grid).

// mbInfo is everything later stages (tokens, prediction, loop filter)
// need to know about one macroblock once its mode/MV has been parsed.
type mbInfo struct {
	yMode     uint8 // intra: predDC..predHE or predBPred; inter: the mvMode* value
	uvMode    uint8
	refFrame  uint8 // refFrame* constant
	skipCoeff bool
	eobMask   int32 // bit i set => block i has >1 coefficient; bit 31 set => any nonzero coefficient at all
	segmentID uint8
	mv        motionVector
	subMV     [16]motionVector
	pred4     [16]uint8 // 4x4 sub-block modes, valid only when yMode == predBPred
}

// mbGrid is a (cols+1) x (rows+1) grid of mbInfo, with row 0 and column
// 0 reserved as an always-intra, zero-MV border.
type mbGrid struct {
	cols, rows int
	cells      []mbInfo
}

func newMBGrid(cols, rows int) *mbGrid {
	g := &mbGrid{cols: cols, rows: rows, cells: make([]mbInfo, (cols+1)*(rows+1))}
	for x := 0; x <= cols; x++ {
		g.at(x, 0).refFrame = refFrameIntra
	}
	for y := 0; y <= rows; y++ {
		g.at(0, y).refFrame = refFrameIntra
	}
	return g
}

// at returns the cell for grid coordinates (x,y) where x,y are offset
// by one relative to macroblock coordinates: mb (0,0) lives at (1,1).
func (g *mbGrid) at(x, y int) *mbInfo {
	return &g.cells[y*(g.cols+1)+x]
}

// mb returns the cell for macroblock coordinates (mbx, mby).
func (g *mbGrid) mb(mbx, mby int) *mbInfo {
	return g.at(mbx+1, mby+1)
}

// left and above return the neighboring macroblock's info, or the
// border cell if mbx/mby is 0.
func (g *mbGrid) left(mbx, mby int) *mbInfo  { return g.at(mbx, mby+1) }
func (g *mbGrid) above(mbx, mby int) *mbInfo { return g.at(mbx+1, mby) }
func (g *mbGrid) aboveLeft(mbx, mby int) *mbInfo { return g.at(mbx, mby) }

func (g *mbGrid) reset() {
	for i := range g.cells {
		g.cells[i] = mbInfo{}
	}
	for x := 0; x <= g.cols; x++ {
		g.at(x, 0).refFrame = refFrameIntra
	}
	for y := 0; y <= g.rows; y++ {
		g.at(0, y).refFrame = refFrameIntra
	}
}
