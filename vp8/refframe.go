// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

import "image"

// Reference-frame management, RFC 6386 Section 9.7 and Section 8's
// "current/last/golden/altref" model. Unlike dixie's refcounted
// frame_state pool (frame_state.cc, not retrieved, described only by
// its role in original_source's headers), this keeps a fixed 3-slot
// array of *image.YCbCr (last/golden/altref) plus the current frame,
// with no refcounting: Go's GC already reclaims a
// slot's previous frame once nothing else references it, so a manual
// refcount would just duplicate what the runtime already does.

const (
	slotLast = 0
	slotGolden = 1
	slotAltRef = 2
	numRefSlots = 3
)

// refFrames holds the three frames a new frame's inter-prediction can
// draw from, plus the frame currently being decoded.
type refFrames struct {
	slots   [numRefSlots]*image.YCbCr
	current *image.YCbCr
}

func (r *refFrames) frame(ref uint8) *image.YCbCr {
	switch ref {
	case refFrameLast:
		return r.slots[slotLast]
	case refFrameGolden:
		return r.slots[slotGolden]
	case refFrameAltRef:
		return r.slots[slotAltRef]
	default:
		return nil
	}
}

// commit applies the reference-control actions decoded for this frame,
// in the fixed order RFC 6386 Section 9.7 and dixie's decode_frame
// (original_source/dixie.c) both use: copy into altref, copy into
// golden, then the three refresh flags (golden, altref, last). Doing
// copy-before-refresh matters when, for instance, golden is refreshed
// from current in the same frame that altref is copied from the old
// golden.
func (r *refFrames) commit(h *referenceHeader) {
	switch h.copyAltRef {
	case 1:
		r.slots[slotAltRef] = r.slots[slotLast]
	case 2:
		r.slots[slotAltRef] = r.slots[slotGolden]
	}
	switch h.copyGolden {
	case 1:
		r.slots[slotGolden] = r.slots[slotLast]
	case 2:
		r.slots[slotGolden] = r.slots[slotAltRef]
	}
	if h.refreshGolden {
		r.slots[slotGolden] = r.current
	}
	if h.refreshAltRef {
		r.slots[slotAltRef] = r.current
	}
	if h.refreshLast {
		r.slots[slotLast] = r.current
	}
}
