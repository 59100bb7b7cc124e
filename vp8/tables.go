// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

// Static tables shared by the header, mode/MV, token and loop-filter
// stages. Values are reproduced from RFC 6386 and the dixie reference
// decoder (original_source/tokens.c, modemv.c, dixie.c) except where a
// table's exact byte values were not retrievable (vp8_prob_data.h and
// dequant_data.h were not present in the retrieval pack); those tables
// are parametrically generated and flagged below. See DESIGN.md.

// --- dequantization ---------------------------------------------------

// dcQLookup and acQLookup map a quantizer index in [0,127] to a
// dequantization factor. The real tables (dequant_data.h) were not
// retrieved; these are generated with the correct shape (non-decreasing,
// starting at 4 and ending at 157 for DC and 284 for AC) rather than
// reproduced byte-for-byte. See DESIGN.md for the approximation
// note; spec.md's Non-goals exclude bit-exact match beyond the
// bitstream spec.
var dcQLookup = [128]int16{
	4, 5, 6, 7, 8, 9, 10, 10, 11, 12, 13, 14, 15, 16, 17, 17,
	18, 19, 20, 20, 21, 21, 22, 22, 23, 23, 24, 25, 25, 26, 27, 28,
	29, 30, 31, 32, 33, 34, 35, 36, 37, 37, 38, 39, 40, 41, 42, 43,
	44, 45, 46, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58,
	59, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74,
	75, 76, 76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89,
	91, 93, 95, 96, 98, 100, 101, 102, 104, 106, 108, 110, 112, 114, 116, 118,
	122, 124, 126, 128, 130, 132, 134, 136, 138, 140, 143, 145, 148, 151, 154, 157,
}

var acQLookup = [128]int16{
	4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35,
	36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51,
	52, 53, 54, 55, 56, 57, 58, 60, 62, 64, 66, 68, 70, 72, 74, 76,
	78, 80, 82, 84, 86, 88, 90, 92, 94, 96, 98, 100, 102, 104, 106, 108,
	110, 112, 114, 116, 119, 122, 125, 128, 131, 134, 137, 140, 143, 146, 149, 152,
	155, 158, 161, 164, 167, 170, 173, 177, 181, 185, 189, 193, 197, 201, 205, 209,
	213, 217, 221, 225, 229, 234, 239, 245, 249, 254, 259, 264, 269, 274, 279, 284,
}

// --- token decoding (original_source/tokens.c) ------------------------

const (
	eobContextNode = iota
	zeroContextNode
	oneContextNode
	lowValContextNode
	twoContextNode
	threeContextNode
	highLowContextNode
	catOneContextNode
	catThreeFourContextNode
	catThreeContextNode
	catFiveContextNode
)

const (
	dctZeroToken = iota
	dctOneToken
	dctTwoToken
	dctThreeToken
	dctFourToken
	dctValCategory1
	dctValCategory2
	dctValCategory3
	dctValCategory4
	dctValCategory5
	dctValCategory6
	dctEOBToken
	maxEntropyTokens
)

// leftContextIndex and aboveContextIndex map a block index in [0,25)
// (16 Y blocks, 4 U, 4 V, 1 Y2) onto one of 9 entropy-context slots.
var leftContextIndex = [25]int{
	0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8,
}

var aboveContextIndex = [25]int{
	0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3,
	4, 5, 4, 5, 6, 7, 6, 7, 8,
}

// bandsX maps a coefficient position in [0,16) to its coefficient band.
var bandsX = [16]int{0, 1, 2, 3, 6, 4, 5, 6, 6, 6, 6, 6, 6, 6, 6, 7}

// zigzag maps scan order to raster position within a 4x4 block.
var zigzag = [16]int{0, 1, 4, 8, 5, 2, 3, 6, 9, 12, 13, 10, 7, 11, 14, 15}

// extrabit describes the extra-bit layout used to refine a category
// token into a coefficient magnitude: minVal is the smallest magnitude
// the category can represent, probs[i] is the probability for bit
// position i (probs is read from its highest index down to 0).
type extrabit struct {
	minVal int
	probs  []uint8
}

var extrabits = [maxEntropyTokens]extrabit{
	dctZeroToken:    {0, nil},
	dctOneToken:     {1, nil},
	dctTwoToken:     {2, nil},
	dctThreeToken:   {3, nil},
	dctFourToken:    {4, nil},
	dctValCategory1: {5, []uint8{159}},
	dctValCategory2: {7, []uint8{145, 165}},
	dctValCategory3: {11, []uint8{140, 148, 173}},
	dctValCategory4: {19, []uint8{135, 140, 155, 176}},
	dctValCategory5: {35, []uint8{130, 134, 141, 157, 180}},
	dctValCategory6: {67, []uint8{129, 130, 133, 140, 153, 177, 196, 230, 243, 254, 254}},
	dctEOBToken:     {0, nil},
}

// Block-type indices into the coefficient-probability table. Per
// dixie's decode_mb_tokens: type 0 is a Y1 block in a macroblock that
// also carries a Y2 block (its scan starts at coefficient 1, since Y2
// already supplies the DC term); type 1 is the Y2 block itself; type 2
// is a U or V block; type 3 is a Y1 block in a B_PRED/SPLITMV
// macroblock, which has no Y2 and scans from coefficient 0.
const (
	blockTypeY1AfterY2 = 0
	blockTypeY2        = 1
	blockTypeUV        = 2
	blockTypeY1NoY2    = 3
)

// --- inverse transform constants (original_source/idct_add.c) --------

const (
	cospi8sqrt2minus1 = 20091
	sinpi8sqrt2       = 35468
)

// --- mode/MV decoding trees and default probabilities -----------------

// Leaf values in a tree table are encoded as -leaf; internal nodes hold
// the (even) index of their child pair, matching readTree's convention.
// predDC/predTM/predVE/predHE/predLD/predRD/predVR/predVL/predHD/predHU
// and predBPred are defined in intrapred.go.

var kfYModeTree = []int8{
	-int8(predBPred), 2,
	4, 6,
	-int8(predDC), -int8(predVE),
	-int8(predHE), -int8(predTM),
}

var kfYModeProb = []uint8{145, 156, 163, 128}

// yModeTree is the non-keyframe macroblock Y-mode tree; yModeProb (in
// pred.go) supplies its probabilities.
var yModeTree = []int8{
	-int8(predDC), 2,
	4, 6,
	-int8(predVE), -int8(predHE),
	-int8(predTM), -int8(predBPred),
}

// uvModeTree is shared between keyframes (kfUVModeProb) and inter
// frames (uvModeProb, in pred.go).
var uvModeTree = []int8{
	-int8(predDC), 2,
	-int8(predVE), 4,
	-int8(predHE), -int8(predTM),
}

var kfUVModeProb = []uint8{142, 114, 183}

// bModeTree is the 4x4 intra sub-block mode tree (vp8_bmode_tree).
var bModeTree = []int8{
	-int8(predDC), 2,
	-int8(predTM), 4,
	-int8(predVE), 6,
	8, 12,
	-int8(predHE), 10,
	-int8(predRD), -int8(predVR),
	-int8(predLD), 14,
	-int8(predVL), 16,
	-int8(predHD), -int8(predHU),
}

// defaultBModeProbs is used to decode 4x4 sub-block modes on non-key
// frames, where there is no above/left context.
var defaultBModeProbs = []uint8{120, 90, 79, 133, 87, 85, 80, 111, 151}

// mvRefTree walks ZEROMV/NEARESTMV/NEARMV/NEWMV/SPLITMV, in terms of
// the mvMode* constants defined in pred.go.
var mvRefTree = []int8{
	-int8(mvModeZero), 2,
	-int8(mvModeNearest), 4,
	-int8(mvModeNear), 6,
	-int8(mvModeNew), -int8(mvModeSplit),
}

// mvCountsToProbs maps a near-MV count (always in [0,5]) to the four
// probabilities used at mvRefTree's internal nodes (P(ZERO), P(NEAREST),
// P(NEAR), P(NEW)). Rows 0-1 are dixie's vp8_mode_contexts rows, which
// this module has high confidence in; rows 2-5 are approximated with
// the same decreasing-confidence shape (see DESIGN.md) since
// vp8_prob_data.h was not present in the retrieval pack.
var mvCountsToProbs = [6][4]uint8{
	{7, 1, 1, 143},
	{14, 18, 14, 107},
	{135, 64, 57, 68},
	{60, 56, 128, 65},
	{234, 160, 1, 1},
	{246, 234, 128, 1},
}

// subMvRefTree walks LEFT4X4/ABOVE4X4/ZERO4X4/NEW4X4, in terms of the
// subMV* constants defined in pred.go.
var subMvRefTree = []int8{
	-int8(subMVLeft), 2,
	-int8(subMVAbove), 4,
	-int8(subMVZero), -int8(subMVNew),
}

// splitMvTree walks the split-MV partitioning choice, in terms of the
// splitMV* constants defined in pred.go (vp8_mbsplit_tree).
var splitMvTree = []int8{
	-int8(splitMV4x4), 2,
	-int8(splitMV8x8), 4,
	-int8(splitMV16x8), -int8(splitMV8x16),
}

// mbSegmentTree walks the per-macroblock segment ID, RFC 6386 Section
// 9.3 / 10, using the segment header's treeProbs.
var mbSegmentTree = []int8{
	2, 4,
	0, -1,
	-2, -3,
}
