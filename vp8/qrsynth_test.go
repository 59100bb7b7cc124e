// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	goqrcode "github.com/skip2/go-qrcode"
)

// TestQRSynthesizeAndRead exercises the same QR encode/decode pair
// TestDecodeQRCodeVideo checks against decoded VP8 frames, but without a
// binary IVF fixture on disk: it synthesizes the QR source image directly
// with go-qrcode, in place of asking an external encoder to have produced
// one ahead of time, and confirms gozxing recovers the original content
// from it. A real VP8-encoded round trip still needs a fixture (this
// package has no encoder, matching spec.md's Non-goals), but this keeps
// the QR half of that pipeline under test without one.
func TestQRSynthesizeAndRead(t *testing.T) {
	const content = "VP8_DECODER_TEST_2025"

	pngBytes, err := goqrcode.Encode(content, goqrcode.Medium, 256)
	if err != nil {
		t.Fatalf("qrcode.Encode: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		t.Fatalf("NewBinaryBitmapFromImage: %v", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if result.GetText() != content {
		t.Errorf("got %q, want %q", result.GetText(), content)
	}
}
