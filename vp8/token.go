// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

// Residual (DCT/WHT coefficient) token decoding, RFC 6386 Section 13.
// Structure follows dixie's decode_mb_tokens (original_source/tokens.c)
// closely, trading its goto-threaded state machine for an explicit
// per-coefficient loop — the decision tree at each coefficient position
// is identical.

// tokenEntropyCtx is the 9-slot left/above nonzero-coefficient context:
// one slot per Y sub-block column/row (4), one per U (2), one per V
// (2), and one for the Y2 block.
type tokenEntropyCtx [9]uint8

// mbCoeffs holds the 25 dequantized 4x4 blocks (16 Y, 4 U, 4 V, 1 Y2)
// of one macroblock, in raster order within each block.
type mbCoeffs [25][16]int16

// decodeMBTokens decodes one macroblock's residual coefficients into
// coeffs (zeroed by the caller), updating left/above in place, and
// returns the eobMask dixie computes: bit i set means block i decoded
// more than one coefficient, bit 31 set means any block in the
// macroblock had a nonzero coefficient at all.
func decodeMBTokens(p *partition, left, above *tokenEntropyCtx, coeffs *mbCoeffs, hasY2 bool, probs *coeffProbsTable, dqf *segmentDequant) int32 {
	var eobMask int32

	decodeBlock := func(idx, typ int, dqFamily int) {
		startC := 0
		if typ == blockTypeY1AfterY2 {
			startC = 1
		}
		initialCtx := int(left[leftContextIndex[idx]]) + int(above[aboveContextIndex[idx]])
		typeProbs := &probs[typ]

		c := startC
		ctx := initialCtx
		checkEOB := true

		for c < 16 {
			node := &typeProbs[bandsX[c]][ctx]

			if checkEOB && !p.readBit(node[eobContextNode]) {
				break
			}
			if !p.readBit(node[zeroContextNode]) {
				c++
				ctx = 0
				checkEOB = false
				continue
			}

			var v int
			var nextCtx int
			switch {
			case !p.readBit(node[oneContextNode]):
				v, nextCtx = 1, 1
			case !p.readBit(node[lowValContextNode]):
				switch {
				case !p.readBit(node[twoContextNode]):
					v = 2
				case !p.readBit(node[threeContextNode]):
					v = 3
				default:
					v = 4
				}
				nextCtx = 2
			case !p.readBit(node[highLowContextNode]):
				if !p.readBit(node[catOneContextNode]) {
					v = readCategory(p, dctValCategory1)
				} else {
					v = readCategory(p, dctValCategory2)
				}
				nextCtx = 2
			case !p.readBit(node[catThreeFourContextNode]):
				if !p.readBit(node[catThreeContextNode]) {
					v = readCategory(p, dctValCategory3)
				} else {
					v = readCategory(p, dctValCategory4)
				}
				nextCtx = 2
			case !p.readBit(node[catFiveContextNode]):
				v = readCategory(p, dctValCategory5)
				nextCtx = 2
			default:
				v = readCategory(p, dctValCategory6)
				nextCtx = 2
			}

			sign := p.readFlag()
			dq := int(dqf.factor[dqFamily][0])
			if c != 0 {
				dq = int(dqf.factor[dqFamily][1])
			}
			val := v * dq
			if sign {
				val = -val
			}
			coeffs[idx][zigzag[c]] = int16(val)

			c++
			ctx = nextCtx
			checkEOB = true
		}

		if c-startC > 1 {
			eobMask |= 1 << uint(idx)
		}
		ctxOut := uint8(0)
		if c != startC {
			ctxOut = 1
			eobMask |= -1 << 31 // bit 31
		}
		left[leftContextIndex[idx]] = ctxOut
		above[aboveContextIndex[idx]] = ctxOut
	}

	if hasY2 {
		decodeBlock(24, blockTypeY2, dqfY2)
		for i := 0; i < 16; i++ {
			decodeBlock(i, blockTypeY1AfterY2, dqfY1)
		}
	} else {
		for i := 0; i < 16; i++ {
			decodeBlock(i, blockTypeY1NoY2, dqfY1)
		}
	}
	for i := 16; i < 24; i++ {
		decodeBlock(i, blockTypeUV, dqfUV)
	}

	return eobMask
}

// readCategory reads the extra-bit-refined magnitude for a DCT_VAL
// category token, most significant bit first.
func readCategory(p *partition, cat int) int {
	e := extrabits[cat]
	val := e.minVal
	for i := len(e.probs) - 1; i >= 0; i-- {
		if p.readBit(e.probs[i]) {
			val += 1 << uint(i)
		}
	}
	return val
}

func resetRowContext(left *tokenEntropyCtx) {
	*left = tokenEntropyCtx{}
}

func resetAboveContext(above []tokenEntropyCtx) {
	for i := range above {
		above[i] = tokenEntropyCtx{}
	}
}

// resetMBContext clears a skipped macroblock's contribution to the
// left/above entropy contexts: the 8 Y+UV slots always reset to zero,
// but the Y2 slot (index 8) only resets when this macroblock actually
// has a Y2 block — a skipped B_PRED/SPLITMV macroblock has none, so its
// neighbors' Y2 context must carry through unchanged.
func resetMBContext(left, above *tokenEntropyCtx, hasY2 bool) {
	for i := 0; i < 8; i++ {
		left[i] = 0
		above[i] = 0
	}
	if hasY2 {
		left[8] = 0
		above[8] = 0
	}
}
