// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

// coeffProbsTable holds one coefficient-decoding probability tree per
// [blockType][band][context].
type coeffProbsTable [4][8][3][11]uint8

// Default and update-gate coefficient probabilities, indexed
// [blockType][band][context][treeNode]. The real tables (vp8_prob_data.h)
// were not present in the retrieval pack, so these are parametrically
// generated placeholders (in defaultCoeffProbs the EOB node holds one
// fixed value per block type and most other nodes rise with the band;
// coeffUpdateProbs are skewed high so updates stay rare) rather than the exact RFC 6386 Section 13.5 byte values.
// See DESIGN.md.

var defaultCoeffProbs = [4][8][3][11]uint8{
	{
		{
			{7, 60, 33, 40, 50, 40, 50, 80, 50, 60, 70},
			{7, 65, 33, 63, 50, 41, 50, 80, 50, 65, 70},
			{7, 70, 33, 86, 50, 42, 50, 80, 50, 80, 70},
		},
		{
			{7, 77, 44, 47, 53, 41, 51, 99, 51, 61, 83},
			{7, 82, 44, 70, 53, 42, 51, 99, 51, 66, 83},
			{7, 87, 44, 93, 53, 43, 51, 99, 51, 81, 83},
		},
		{
			{7, 94, 55, 54, 56, 44, 52, 118, 54, 62, 96},
			{7, 99, 55, 77, 56, 45, 52, 118, 54, 67, 96},
			{7, 104, 55, 100, 56, 46, 52, 118, 54, 82, 96},
		},
		{
			{7, 111, 66, 61, 59, 49, 53, 137, 59, 63, 109},
			{7, 116, 66, 84, 59, 50, 53, 137, 59, 68, 109},
			{7, 121, 66, 107, 59, 51, 53, 137, 59, 83, 109},
		},
		{
			{7, 128, 77, 68, 62, 56, 54, 156, 66, 64, 122},
			{7, 133, 77, 91, 62, 57, 54, 156, 66, 69, 122},
			{7, 138, 77, 114, 62, 58, 54, 156, 66, 84, 122},
		},
		{
			{7, 145, 88, 75, 65, 65, 55, 175, 75, 65, 135},
			{7, 150, 88, 98, 65, 66, 55, 175, 75, 70, 135},
			{7, 155, 88, 121, 65, 67, 55, 175, 75, 85, 135},
		},
		{
			{7, 162, 99, 82, 68, 76, 56, 194, 86, 66, 148},
			{7, 167, 99, 105, 68, 77, 56, 194, 86, 71, 148},
			{7, 172, 99, 128, 68, 78, 56, 194, 86, 86, 148},
		},
		{
			{7, 179, 110, 89, 71, 89, 57, 213, 99, 67, 161},
			{7, 184, 110, 112, 71, 90, 57, 213, 99, 72, 161},
			{7, 189, 110, 135, 71, 91, 57, 213, 99, 87, 161},
		},
	},
	{
		{
			{20, 60, 33, 40, 79, 40, 50, 80, 57, 60, 70},
			{20, 65, 33, 63, 79, 41, 57, 80, 57, 65, 71},
			{20, 70, 33, 86, 79, 42, 64, 80, 57, 80, 72},
		},
		{
			{20, 77, 44, 47, 82, 41, 51, 99, 58, 61, 83},
			{20, 82, 44, 70, 82, 42, 58, 99, 58, 66, 84},
			{20, 87, 44, 93, 82, 43, 65, 99, 58, 81, 85},
		},
		{
			{20, 94, 55, 54, 85, 44, 52, 118, 61, 62, 96},
			{20, 99, 55, 77, 85, 45, 59, 118, 61, 67, 97},
			{20, 104, 55, 100, 85, 46, 66, 118, 61, 82, 98},
		},
		{
			{20, 111, 66, 61, 88, 49, 53, 137, 66, 63, 109},
			{20, 116, 66, 84, 88, 50, 60, 137, 66, 68, 110},
			{20, 121, 66, 107, 88, 51, 67, 137, 66, 83, 111},
		},
		{
			{20, 128, 77, 68, 91, 56, 54, 156, 73, 64, 122},
			{20, 133, 77, 91, 91, 57, 61, 156, 73, 69, 123},
			{20, 138, 77, 114, 91, 58, 68, 156, 73, 84, 124},
		},
		{
			{20, 145, 88, 75, 94, 65, 55, 175, 82, 65, 135},
			{20, 150, 88, 98, 94, 66, 62, 175, 82, 70, 136},
			{20, 155, 88, 121, 94, 67, 69, 175, 82, 85, 137},
		},
		{
			{20, 162, 99, 82, 97, 76, 56, 194, 93, 66, 148},
			{20, 167, 99, 105, 97, 77, 63, 194, 93, 71, 149},
			{20, 172, 99, 128, 97, 78, 70, 194, 93, 86, 150},
		},
		{
			{20, 179, 110, 89, 100, 89, 57, 213, 106, 67, 161},
			{20, 184, 110, 112, 100, 90, 64, 213, 106, 72, 162},
			{20, 189, 110, 135, 100, 91, 71, 213, 106, 87, 163},
		},
	},
	{
		{
			{33, 60, 33, 40, 108, 40, 50, 80, 64, 60, 70},
			{33, 65, 33, 63, 108, 41, 64, 80, 64, 65, 72},
			{33, 70, 33, 86, 108, 42, 78, 80, 64, 80, 74},
		},
		{
			{33, 77, 44, 47, 111, 41, 51, 99, 65, 61, 83},
			{33, 82, 44, 70, 111, 42, 65, 99, 65, 66, 85},
			{33, 87, 44, 93, 111, 43, 79, 99, 65, 81, 87},
		},
		{
			{33, 94, 55, 54, 114, 44, 52, 118, 68, 62, 96},
			{33, 99, 55, 77, 114, 45, 66, 118, 68, 67, 98},
			{33, 104, 55, 100, 114, 46, 80, 118, 68, 82, 100},
		},
		{
			{33, 111, 66, 61, 117, 49, 53, 137, 73, 63, 109},
			{33, 116, 66, 84, 117, 50, 67, 137, 73, 68, 111},
			{33, 121, 66, 107, 117, 51, 81, 137, 73, 83, 113},
		},
		{
			{33, 128, 77, 68, 120, 56, 54, 156, 80, 64, 122},
			{33, 133, 77, 91, 120, 57, 68, 156, 80, 69, 124},
			{33, 138, 77, 114, 120, 58, 82, 156, 80, 84, 126},
		},
		{
			{33, 145, 88, 75, 123, 65, 55, 175, 89, 65, 135},
			{33, 150, 88, 98, 123, 66, 69, 175, 89, 70, 137},
			{33, 155, 88, 121, 123, 67, 83, 175, 89, 85, 139},
		},
		{
			{33, 162, 99, 82, 126, 76, 56, 194, 100, 66, 148},
			{33, 167, 99, 105, 126, 77, 70, 194, 100, 71, 150},
			{33, 172, 99, 128, 126, 78, 84, 194, 100, 86, 152},
		},
		{
			{33, 179, 110, 89, 129, 89, 57, 213, 113, 67, 161},
			{33, 184, 110, 112, 129, 90, 71, 213, 113, 72, 163},
			{33, 189, 110, 135, 129, 91, 85, 213, 113, 87, 165},
		},
	},
	{
		{
			{46, 60, 33, 40, 137, 40, 50, 80, 71, 60, 70},
			{46, 65, 33, 63, 137, 41, 71, 80, 71, 65, 73},
			{46, 70, 33, 86, 137, 42, 92, 80, 71, 80, 76},
		},
		{
			{46, 77, 44, 47, 140, 41, 51, 99, 72, 61, 83},
			{46, 82, 44, 70, 140, 42, 72, 99, 72, 66, 86},
			{46, 87, 44, 93, 140, 43, 93, 99, 72, 81, 89},
		},
		{
			{46, 94, 55, 54, 143, 44, 52, 118, 75, 62, 96},
			{46, 99, 55, 77, 143, 45, 73, 118, 75, 67, 99},
			{46, 104, 55, 100, 143, 46, 94, 118, 75, 82, 102},
		},
		{
			{46, 111, 66, 61, 146, 49, 53, 137, 80, 63, 109},
			{46, 116, 66, 84, 146, 50, 74, 137, 80, 68, 112},
			{46, 121, 66, 107, 146, 51, 95, 137, 80, 83, 115},
		},
		{
			{46, 128, 77, 68, 149, 56, 54, 156, 87, 64, 122},
			{46, 133, 77, 91, 149, 57, 75, 156, 87, 69, 125},
			{46, 138, 77, 114, 149, 58, 96, 156, 87, 84, 128},
		},
		{
			{46, 145, 88, 75, 152, 65, 55, 175, 96, 65, 135},
			{46, 150, 88, 98, 152, 66, 76, 175, 96, 70, 138},
			{46, 155, 88, 121, 152, 67, 97, 175, 96, 85, 141},
		},
		{
			{46, 162, 99, 82, 155, 76, 56, 194, 107, 66, 148},
			{46, 167, 99, 105, 155, 77, 77, 194, 107, 71, 151},
			{46, 172, 99, 128, 155, 78, 98, 194, 107, 86, 154},
		},
		{
			{46, 179, 110, 89, 158, 89, 57, 213, 120, 67, 161},
			{46, 184, 110, 112, 158, 90, 78, 213, 120, 72, 164},
			{46, 189, 110, 135, 158, 91, 99, 213, 120, 87, 167},
		},
	},
}

var coeffUpdateProbs = [4][8][3][11]uint8{
	{
		{
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
		},
		{
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
		},
		{
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
		},
		{
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
		},
		{
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
		},
		{
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
		},
		{
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
		},
		{
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
		},
	},
	{
		{
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
		},
		{
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
		},
		{
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
		},
		{
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
		},
		{
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
		},
		{
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
		},
		{
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
		},
		{
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
		},
	},
	{
		{
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
		},
		{
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
		},
		{
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
		},
		{
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
		},
		{
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
		},
		{
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
		},
		{
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
		},
		{
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
		},
	},
	{
		{
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
		},
		{
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
		},
		{
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
		},
		{
			{249, 249, 246, 247, 243, 247, 244, 244, 247, 246, 243},
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
		},
		{
			{255, 255, 252, 253, 249, 253, 250, 250, 253, 252, 249},
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
		},
		{
			{254, 254, 251, 252, 248, 252, 249, 249, 252, 251, 248},
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
		},
		{
			{253, 253, 250, 251, 247, 251, 248, 248, 251, 250, 247},
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
		},
		{
			{252, 252, 249, 250, 246, 250, 247, 247, 250, 249, 246},
			{251, 251, 248, 249, 245, 249, 246, 246, 249, 248, 245},
			{250, 250, 247, 248, 244, 248, 245, 245, 248, 247, 244},
		},
	},
}
