// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vp8 implements a decoder for the VP8 video format, as
// specified in RFC 6386.
package vp8

import (
	"image"
	"io"
)

// CorruptFrameError reports that a frame's compressed data could not be
// parsed, either because it was truncated or because a field failed a
// sanity check (a bad start code, a partition that claims more bytes
// than are available, and so on).
type CorruptFrameError string

func (e CorruptFrameError) Error() string { return "vp8: corrupt frame: " + string(e) }

// UnsupportedBitstreamError reports a syntactically valid frame whose
// bitstream version or profile this decoder has no support for.
type UnsupportedBitstreamError string

func (e UnsupportedBitstreamError) Error() string { return "vp8: unsupported bitstream: " + string(e) }

// FrameHeader is the subset of a frame's uncompressed tag that callers
// outside the package need: whether it's a keyframe, and the frame
// dimensions it establishes (keyframes only; inter frames inherit the
// dimensions of the last keyframe).
type FrameHeader struct {
	KeyFrame bool
	Shown    bool
	Width    int
	Height   int
}

// mbModeCtx is the above/left Y-submode context parsePredModeY4 and
// parsePredModeY4Inter thread through a row and down a column: the
// per-4x4-column mode most recently decoded for the macroblock above,
// and (via a single rolling value) for the macroblock to the left.
type mbModeCtx struct {
	pred [4]uint8
}

// limitReader bounds reads to the n bytes belonging to one frame, as
// handed to Init by a caller that already knows each frame's exact
// length (an IVF or WebM frame size, for instance).
type limitReader struct {
	r io.Reader
	n int
}

func (lr *limitReader) readFull(p []byte) error {
	if len(p) > lr.n {
		return io.ErrUnexpectedEOF
	}
	if _, err := io.ReadFull(lr.r, p); err != nil {
		return err
	}
	lr.n -= len(p)
	return nil
}

// Decoder decodes a sequence of VP8 frames sharing one coded
// resolution and reference-frame state. Its fields mirror dixie's
// vp8_decoder_ctx: persistent per-stream header state, the rolling
// above/left neighbor context the mode/MV and token stages read
// directly, and the small scratch buffers reconstruction writes
// through before the result is copied into the displayed image.
type Decoder struct {
	r        limitReader
	frameBuf []byte

	width, height         int
	horizScale, vertScale int
	mbw, mbh              int

	fh      frameHeader
	seg     segmentHeader
	lf      loopFilterHeader
	quant   quantHeader
	ref     referenceHeader
	entropy entropyHeader
	dequant [4]segmentDequant

	fp partition
	tp []partition

	img       *image.YCbCr
	refFrames refFrames
	grid      *mbGrid

	// segmentMap is the per-macroblock segment assignment, persisted
	// across frames whose segmentation header doesn't update the map
	// (RFC 6386 Section 9.3: "segment_feature_mode ... update_mb_
	// segmentation_map" false means the previous frame's map stands).
	segmentMap []uint8

	// Rolling neighbor context for findNearMVs and the B_PRED mode
	// trees. leftXxx is the macroblock immediately to the left of the
	// one being decoded; aboveXxx is the one directly above (this
	// row's copy of last row's upXxx, loaded at the top of each
	// column); upXxx[mbx] is "last row, column mbx", updated with a
	// one-column delay so a column's own "above" read (of upXxx[mbx])
	// happens before it gets overwritten with this row's value, and so
	// that the *next* column's "above-left" read (of upXxx[mbx-1])
	// still sees last row's value too.
	leftMB        mbModeCtx
	upMB          []mbModeCtx
	leftRefFrame  uint8
	aboveRefFrame uint8
	upRefFrame    []uint8
	leftMV        motionVector
	aboveMV       motionVector
	upMV          []motionVector
	leftYMode     uint8
	aboveYMode    uint8
	upYMode       []uint8

	signBias [4]bool
	mvProb   [2][19]uint8
	probIntra, probLast, probGF uint8

	// Per-macroblock scratch, filled while decoding the macroblock at
	// (mbx, mby) currently in progress.
	isInterMB bool
	refFrame  uint8
	mvMode    uint8
	mbMV      motionVector
	subMV     [16]motionVector
	predY16   uint8
	predC8    uint8
	predY4    [4][4]uint8
	coeffs    mbCoeffs

	leftCtx  tokenEntropyCtx
	aboveCtx []tokenEntropyCtx

	// ybr is the inter-prediction workspace: luma at rows 1..16, cols
	// 8..23; Cb at rows 18..25, cols 8..15; Cr at rows 18..25, cols
	// 24..31. interpred.go's filters read from the reference frame and
	// write only inside these ranges; the other rows and columns are unused.
	ybr [26][32]byte

	MVModeCount            [5]int
	IntraMBCount, InterMBCount int
}

// NewDecoder returns a Decoder ready to have Init called on it.
func NewDecoder() *Decoder {
	d := &Decoder{}
	for i := range d.dequant {
		d.dequant[i].quantIdx = -1
	}
	return d
}

// Init prepares d to decode a single frame of n bytes read from r. It
// must be called before each DecodeFrameHeader/DecodeFrame pair.
func (d *Decoder) Init(r io.Reader, n int) {
	d.r = limitReader{r: r, n: n}
}

// getRefFrame resolves a refFrame* constant to the image it names, or
// nil if that slot has never been filled (possible only before the
// stream's first keyframe, which performInterPrediction handles by
// filling with neutral gray).
func (d *Decoder) getRefFrame(ref uint8) *image.YCbCr {
	return d.refFrames.frame(ref)
}

// allocateForSize (re)allocates everything sized by the macroblock
// grid: called once from DecodeFrameHeader whenever a keyframe
// announces a new coded resolution. Any reference frames held from
// before are the wrong size and are discarded along with the old
// segment map, since a resolution change forces a keyframe (all
// intra) regardless.
func (d *Decoder) allocateForSize() {
	n := d.mbw * d.mbh
	d.segmentMap = make([]uint8, n)
	d.upRefFrame = make([]uint8, d.mbw)
	d.upMV = make([]motionVector, d.mbw)
	d.upYMode = make([]uint8, d.mbw)
	d.upMB = make([]mbModeCtx, d.mbw)
	d.aboveCtx = make([]tokenEntropyCtx, d.mbw)
	d.grid = newMBGrid(d.mbw, d.mbh)
	d.refFrames = refFrames{}
	for i := range d.dequant {
		d.dequant[i].quantIdx = -1
	}
}

// DecodeFrameHeader reads this frame's full compressed payload (Init's
// n bytes) and parses its uncompressed tag, returning whether it's a
// keyframe and the coded dimensions. DecodeFrame does the rest of the
// parsing and the actual reconstruction; the two are split, as in the
// teacher package, so a caller can inspect the header before
// committing to decode the frame body.
func (d *Decoder) DecodeFrameHeader() (FrameHeader, error) {
	buf := make([]byte, d.r.n)
	if err := d.r.readFull(buf); err != nil {
		return FrameHeader{}, err
	}
	d.frameBuf = buf

	fh, err := parseFrameHeader(buf)
	if err != nil {
		return FrameHeader{}, err
	}
	d.fh = fh

	if fh.isKeyframe {
		d.width, d.height = fh.width, fh.height
		d.horizScale, d.vertScale = fh.horizScale, fh.vertScale
		mbw := (d.width + 15) / 16
		mbh := (d.height + 15) / 16
		if mbw != d.mbw || mbh != d.mbh {
			d.mbw, d.mbh = mbw, mbh
			d.allocateForSize()
		}
	} else if d.mbw == 0 {
		return FrameHeader{}, errCorruptFrame
	}

	return FrameHeader{KeyFrame: fh.isKeyframe, Shown: fh.isShown, Width: d.width, Height: d.height}, nil
}

// ensureImage allocates a fresh output buffer for the frame about to be
// reconstructed. A fresh allocation every frame, rather than reusing a
// pooled buffer, is deliberate: refFrames.commit keeps raw *image.YCbCr
// pointers into previously decoded frames, and overwriting one of those
// in place would corrupt a still-referenced golden or altref frame.
//
// YStride/CStride span the full macroblock grid (mbw*16, mbh*8), since
// reconstruction fills every coded macroblock including the partial ones
// along the right and bottom edges when width/height aren't multiples of
// 16; Rect crops to the displayed width/height, matching what
// performInterPrediction's edge clamps (ref.Rect.Max.X/Y) are meant to
// bound motion-compensated reads to.
func (d *Decoder) ensureImage() {
	yw, yh := d.mbw*16, d.mbh*16
	cw, ch := d.mbw*8, d.mbh*8
	ySize := yw * yh
	cSize := cw * ch
	buf := make([]byte, ySize+2*cSize)
	d.img = &image.YCbCr{
		Y:              buf[:ySize],
		Cb:             buf[ySize : ySize+cSize],
		Cr:             buf[ySize+cSize:],
		YStride:        yw,
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, d.width, d.height),
	}
}

// DecodeFrame decodes the frame whose header DecodeFrameHeader just
// parsed, and returns the reconstructed image. The returned image
// aliases the Decoder's internal state; it must not be modified by the
// caller and is only valid until the next DecodeFrame call.
func (d *Decoder) DecodeFrame() (*image.YCbCr, error) {
	fh := d.fh
	buf := d.frameBuf

	off := frameHeaderSize
	if fh.isKeyframe {
		off += keyFrameHeaderSize
	}
	if off+fh.part0Size > len(buf) {
		return nil, errCorruptFrame
	}
	firstPart := buf[off : off+fh.part0Size]
	rest := buf[off+fh.part0Size:]

	if fh.isKeyframe {
		d.entropy.setKeyframeDefaults()
		d.grid.reset()
	}

	d.fp.init(firstPart)
	if fh.isKeyframe {
		d.fp.readUint(uniformProb, 1) // color_space, unused by this decoder
		d.fp.readUint(uniformProb, 1) // clamping_type, unused: clip255 always clamps
	}

	decodeSegmentHeader(&d.fp, fh.isKeyframe, &d.seg)
	decodeLoopFilterHeader(&d.fp, fh.isKeyframe, &d.lf)

	tokenHdr, err := decodeTokenPartitionSizes(&d.fp, rest)
	if err != nil {
		return nil, err
	}

	decodeQuantHeader(&d.fp, &d.quant)
	computeDequant(&d.seg, &d.quant, &d.dequant)

	decodeReferenceHeader(&d.fp, fh.isKeyframe, &d.ref)
	d.signBias = [4]bool{false, false, d.ref.signBiasGolden, d.ref.signBiasAltRef}

	savedEntropy := d.entropy
	decodeEntropyHeader(&d.fp, fh.isKeyframe, &d.entropy)

	d.probIntra = d.entropy.probIntra
	d.probLast = d.entropy.probLast
	d.probGF = d.entropy.probGF
	d.mvProb = d.entropy.mvProbs
	yModeProb = d.entropy.yModeProbs
	uvModeProb = d.entropy.uvModeProbs

	if d.fp.unexpectedEOF {
		return nil, errCorruptFrame
	}

	if err := d.setupTokenPartitions(tokenHdr, rest); err != nil {
		return nil, err
	}

	d.ensureImage()

	for i := range d.upRefFrame {
		d.upRefFrame[i] = refFrameIntra
		d.upMV[i] = mvZero
		d.upYMode[i] = mvModeNearest
		d.upMB[i] = mbModeCtx{}
	}
	resetAboveContext(d.aboveCtx)
	d.IntraMBCount = 0
	d.InterMBCount = 0
	d.MVModeCount = [5]int{}

	for mby := 0; mby < d.mbh; mby++ {
		d.decodeRow(mby)
		if mby > 0 {
			d.filterRow(mby - 1)
		}
	}
	if d.mbh > 0 {
		d.filterRow(d.mbh - 1)
	}

	if !d.ref.refreshEntropy {
		d.entropy = savedEntropy
	}

	d.refFrames.current = d.img
	d.refFrames.commit(&d.ref)

	return d.img, nil
}

// setupTokenPartitions slices the 1-8 token partitions (RFC 6386
// Section 9.5) out of rest, skipping the raw partition-size table that
// decodeTokenPartitionSizes has already parsed from its front.
func (d *Decoder) setupTokenPartitions(h tokenHeader, rest []byte) error {
	sizesBytes := 3 * (h.numPartitions - 1)
	data := rest[sizesBytes:]

	if cap(d.tp) < h.numPartitions {
		d.tp = make([]partition, h.numPartitions)
	} else {
		d.tp = d.tp[:h.numPartitions]
	}
	off := 0
	for i, sz := range h.partitionSize {
		if off+sz > len(data) {
			return errCorruptFrame
		}
		d.tp[i].init(data[off : off+sz])
		off += sz
	}
	return nil
}

// filterRow runs the in-loop deblocking filter over row mby. It is
// safe to call unconditionally: loopFilterMBNormal/Simple no-op any
// macroblock whose computed edge limit is zero.
func (d *Decoder) filterRow(mby int) {
	loopFilterRow(d.img, d.grid, &d.lf, &d.seg, d.fh.isKeyframe, mby)
}

// decodeRow decodes every macroblock in row mby, maintaining the
// rolling left/above/above-left neighbor context that findNearMVs and
// the B_PRED mode trees read.
func (d *Decoder) decodeRow(mby int) {
	tp := &d.tp[mby%len(d.tp)]

	resetRowContext(&d.leftCtx)
	d.leftRefFrame = refFrameIntra
	d.leftMV = mvZero
	d.leftYMode = mvModeNearest
	d.leftMB = mbModeCtx{}

	var pendingRef uint8 = refFrameIntra
	var pendingMV motionVector
	var pendingYMode uint8 = mvModeNearest

	for mbx := 0; mbx < d.mbw; mbx++ {
		d.aboveRefFrame = d.upRefFrame[mbx]
		d.aboveMV = d.upMV[mbx]
		d.aboveYMode = d.upYMode[mbx]

		d.decodeMacroblock(tp, mbx, mby)

		if mbx > 0 {
			// Only now, after this column's own above-left read (of
			// upXxx[mbx-1], done inside decodeMacroblock via
			// findNearMVs) has happened, is it safe to replace last
			// row's value there with the one just stashed when
			// column mbx-1 finished.
			d.upRefFrame[mbx-1] = pendingRef
			d.upMV[mbx-1] = pendingMV
			d.upYMode[mbx-1] = pendingYMode
		}
		pendingRef, pendingMV, pendingYMode = d.refFrame, d.mbMV, d.mvMode
		d.leftRefFrame, d.leftMV, d.leftYMode = d.refFrame, d.mbMV, d.mvMode
	}
	d.upRefFrame[d.mbw-1] = pendingRef
	d.upMV[d.mbw-1] = pendingMV
	d.upYMode[d.mbw-1] = pendingYMode
}

// parseSegmentID resolves the segment ID for macroblock (mbx, mby): a
// fresh tree-coded value when the segmentation map is being updated
// this frame, or the persisted value from whenever it was last
// updated.
func (d *Decoder) parseSegmentID(mbx, mby int) uint8 {
	if !d.seg.enabled {
		return 0
	}
	idx := mby*d.mbw + mbx
	if d.seg.updateMap {
		id := uint8(d.fp.readTree(mbSegmentTree, d.seg.treeProbs[:]))
		d.segmentMap[idx] = id
		return id
	}
	return d.segmentMap[idx]
}

// decodeMacroblock parses one macroblock's mode, motion vector and
// residual, then reconstructs its pixels, RFC 6386 Section 19.3.
func (d *Decoder) decodeMacroblock(tp *partition, mbx, mby int) {
	segmentID := d.parseSegmentID(mbx, mby)

	skip := false
	if d.entropy.coeffSkipOn {
		skip = d.fp.readBit(d.entropy.coeffSkipProb)
	}

	if d.fh.isKeyframe {
		d.isInterMB = false
		d.refFrame = refFrameIntra
		d.IntraMBCount++
		d.parsePredModeY16(mbx)
		d.parsePredModeC8()
	} else if d.parseMBModeInter(mbx, mby) {
		// Inter macroblock: mode, reference frame and motion
		// vector(s) were all parsed by parseMBModeInter/parseMVMode.
	} else {
		d.parsePredModeY16Intra(mbx)
		d.parsePredModeC8Intra()
	}

	// findNearMVs and the loop filter both read a macroblock's "ymode"
	// through a single field (d.mvMode, and mb.yMode below); an intra
	// macroblock has no MV mode of its own, so it reports the sentinel
	// mvModeNearest, which is never mvModeSplit and so never inflates
	// a neighbor's split-MV count.
	if !d.isInterMB {
		d.mvMode = mvModeNearest
	}

	var hasY2 bool
	if d.isInterMB {
		hasY2 = d.mvMode != mvModeSplit
	} else {
		hasY2 = d.predY16 != predBPred
	}

	d.coeffs = mbCoeffs{}
	var eobMask int32
	if skip {
		resetMBContext(&d.leftCtx, &d.aboveCtx[mbx], hasY2)
	} else {
		eobMask = decodeMBTokens(tp, &d.leftCtx, &d.aboveCtx[mbx], &d.coeffs, hasY2, &d.entropy.coeffProbs, &d.dequant[segmentID])
	}

	if hasY2 {
		var wht [16]int16
		inverseWHT4x4(&d.coeffs[24], &wht)
		for i := 0; i < 16; i++ {
			d.coeffs[i][0] = wht[i]
		}
	}

	mb := d.grid.mb(mbx, mby)
	mb.segmentID = segmentID
	mb.refFrame = d.refFrame
	mb.skipCoeff = skip
	mb.eobMask = eobMask
	mb.mv = d.mbMV
	mb.subMV = d.subMV

	if d.isInterMB {
		mb.yMode = d.mvMode
		d.performInterPrediction(mbx, mby)
		d.reconstructInter(mbx, mby)
		return
	}

	mb.yMode = d.predY16
	mb.uvMode = d.predC8
	if d.predY16 == predBPred {
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				mb.pred4[row*4+col] = d.predY4[row][col]
			}
		}
	}
	d.reconstructIntra(mbx, mby)
}

// addResidualBlock adds coeffs' residual into plane[pos:], which holds
// the already-predicted pixels for one 4x4 block (recon and predict
// are the same bytes, reconstructed in place). A block whose only
// nonzero coefficient is the DC term is common enough, especially
// around skip_coeff, to warrant the cheaper fixed-delta path.
func addResidualBlock(plane []byte, pos, stride int, coeffs *[16]int16) {
	acZero := true
	for i := 1; i < 16; i++ {
		if coeffs[i] != 0 {
			acZero = false
			break
		}
	}
	dst := plane[pos:]
	if acZero {
		if coeffs[0] == 0 {
			return
		}
		idctAddDCOnly(dst, stride, dst, coeffs[0])
		return
	}
	idctAddResidual(dst, stride, dst, coeffs)
}

// lumaAt, cbAt and crAt read a plane's pixel at (x, y), defaulting to
// the out-of-frame border values RFC 6386 Section 12.2 specifies: 127
// above the frame (checked first, so the corner pixel at (-1,-1) comes
// out 127, not 129) and 129 to its left.
func (d *Decoder) lumaAt(x, y int) byte {
	if y < 0 {
		return 127
	}
	if x < 0 {
		return 129
	}
	return d.img.Y[y*d.img.YStride+x]
}

func (d *Decoder) cbAt(x, y int) byte {
	if y < 0 {
		return 127
	}
	if x < 0 {
		return 129
	}
	return d.img.Cb[y*d.img.CStride+x]
}

func (d *Decoder) crAt(x, y int) byte {
	if y < 0 {
		return 127
	}
	if x < 0 {
		return 129
	}
	return d.img.Cr[y*d.img.CStride+x]
}

// reconstructIntra predicts and adds residual for an intra macroblock,
// operating directly on d.img's planes: macroblocks are reconstructed
// in raster order, so by the time a macroblock is predicted, every
// neighbor it reads (above, left, above-right) already holds real
// reconstructed pixels.
func (d *Decoder) reconstructIntra(mbx, mby int) {
	if d.predY16 == predBPred {
		d.reconstructIntraY4(mbx, mby)
	} else {
		d.reconstructIntraY16(mbx, mby)
	}
	d.reconstructIntraUV(mbx, mby)
}

func (d *Decoder) reconstructIntraY16(mbx, mby int) {
	x, y := mbx*16, mby*16
	stride := d.img.YStride
	pos := y*stride + x

	haveAbove := mby > 0
	haveLeft := mbx > 0
	var above, left [16]byte
	for i := 0; i < 16; i++ {
		above[i] = d.lumaAt(x+i, y-1)
		left[i] = d.lumaAt(x-1, y+i)
	}
	aboveLeft := d.lumaAt(x-1, y-1)

	predictBlock16(d.img.Y[pos:], stride, 16, above[:], left[:], aboveLeft, haveAbove, haveLeft, d.predY16)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			bpos := pos + row*4*stride + col*4
			addResidualBlock(d.img.Y, bpos, stride, &d.coeffs[row*4+col])
		}
	}
}

// aboveRightY returns the 4 "above-right" context pixels for the 4x4
// luma sub-block at (blockRow, blockCol) within macroblock (mbx, mby),
// RFC 6386 Section 12.3. Sub-blocks in the rightmost column (3) don't
// use their own above-right neighbor; per dixie's copy_down
// (predict.c), they all reuse the 4 pixels above the whole macroblock's
// top-right corner. For the macroblock in the last column, that
// corner has no real block to its right: those 4 positions are
// clamped to the last column actually in the frame, extending its edge
// rather than reading (or fabricating) pixels from outside the coded
// picture.
func (d *Decoder) aboveRightY(mbx, mby, blockRow, blockCol int) [4]byte {
	var x0, y int
	if blockCol == 3 {
		x0, y = mbx*16+16, mby*16-1
	} else {
		x0, y = mbx*16+(blockCol+1)*4, mby*16+blockRow*4-1
	}
	maxX := d.mbw*16 - 1
	var ar [4]byte
	for i := 0; i < 4; i++ {
		x := x0 + i
		if x > maxX {
			x = maxX
		}
		ar[i] = d.lumaAt(x, y)
	}
	return ar
}

func (d *Decoder) reconstructIntraY4(mbx, mby int) {
	stride := d.img.YStride
	for blockRow := 0; blockRow < 4; blockRow++ {
		for blockCol := 0; blockCol < 4; blockCol++ {
			x := mbx*16 + blockCol*4
			y := mby*16 + blockRow*4
			pos := y*stride + x

			var c b4Context
			for i := 0; i < 4; i++ {
				c.above[i] = d.lumaAt(x+i, y-1)
				c.left[i] = d.lumaAt(x-1, y+i)
			}
			c.aboveLeft = d.lumaAt(x-1, y-1)
			c.aboveRight = d.aboveRightY(mbx, mby, blockRow, blockCol)

			mode := d.predY4[blockRow][blockCol]
			predictSubBlock4(d.img.Y[pos:], stride, c, mode)
			addResidualBlock(d.img.Y, pos, stride, &d.coeffs[blockRow*4+blockCol])
		}
	}
}

func (d *Decoder) reconstructIntraUV(mbx, mby int) {
	x, y := mbx*8, mby*8
	haveAbove := mby > 0
	haveLeft := mbx > 0
	stride := d.img.CStride

	for plane := 0; plane < 2; plane++ {
		pl, at := d.img.Cb, d.cbAt
		coeffBase := 16
		if plane == 1 {
			pl, at = d.img.Cr, d.crAt
			coeffBase = 20
		}
		pos := y*stride + x

		var above, left [8]byte
		for i := 0; i < 8; i++ {
			above[i] = at(x+i, y-1)
			left[i] = at(x-1, y+i)
		}
		aboveLeft := at(x-1, y-1)

		predictBlock16(pl[pos:], stride, 8, above[:], left[:], aboveLeft, haveAbove, haveLeft, d.predC8)

		for row := 0; row < 2; row++ {
			for col := 0; col < 2; col++ {
				bpos := pos + row*4*stride + col*4
				addResidualBlock(pl, bpos, stride, &d.coeffs[coeffBase+row*2+col])
			}
		}
	}
}

// addYBRResidual adds one 4x4 block's residual into the ybr workspace
// at (row0, col0), via a small on-stack buffer since idctAddResidual
// and idctAddDCOnly want a flat, strided []byte rather than a 2D array.
func (d *Decoder) addYBRResidual(row0, col0 int, coeffs *[16]int16) {
	var buf [16]byte
	for r := 0; r < 4; r++ {
		copy(buf[r*4:r*4+4], d.ybr[row0+r][col0:col0+4])
	}
	addResidualBlock(buf[:], 0, 4, coeffs)
	for r := 0; r < 4; r++ {
		copy(d.ybr[row0+r][col0:col0+4], buf[r*4:r*4+4])
	}
}

// storeYBR copies the reconstructed macroblock out of the ybr
// workspace into the displayed image.
func (d *Decoder) storeYBR(mbx, mby int) {
	yPos := mby*16*d.img.YStride + mbx*16
	for r := 0; r < 16; r++ {
		copy(d.img.Y[yPos+r*d.img.YStride:yPos+r*d.img.YStride+16], d.ybr[1+r][8:24])
	}
	cPos := mby*8*d.img.CStride + mbx*8
	for r := 0; r < 8; r++ {
		copy(d.img.Cb[cPos+r*d.img.CStride:cPos+r*d.img.CStride+8], d.ybr[18+r][8:16])
		copy(d.img.Cr[cPos+r*d.img.CStride:cPos+r*d.img.CStride+8], d.ybr[18+r][24:32])
	}
}

// reconstructInter fills d.ybr via performInterPrediction (already
// called by decodeMacroblock), adds this macroblock's residual into
// it, and copies the result into the displayed image.
func (d *Decoder) reconstructInter(mbx, mby int) {
	for blockRow := 0; blockRow < 4; blockRow++ {
		for blockCol := 0; blockCol < 4; blockCol++ {
			d.addYBRResidual(1+blockRow*4, 8+blockCol*4, &d.coeffs[blockRow*4+blockCol])
		}
	}
	for blockRow := 0; blockRow < 2; blockRow++ {
		for blockCol := 0; blockCol < 2; blockCol++ {
			uIdx := 16 + blockRow*2 + blockCol
			vIdx := 20 + blockRow*2 + blockCol
			d.addYBRResidual(18+blockRow*4, 8+blockCol*4, &d.coeffs[uIdx])
			d.addYBRResidual(18+blockRow*4, 24+blockCol*4, &d.coeffs[vIdx])
		}
	}
	d.storeYBR(mbx, mby)
}
