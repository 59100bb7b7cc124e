// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vp8info prints one line of frame-dependency metadata per frame
// in an IVF/VP8 file: frame index, type, show flag, coded size and
// reported dimensions. It mirrors the role of dixie's operator_parser -
// it reads only the parts of the bitstream needed to answer "what kind of
// frame is this, and how big", not the full residual/reconstruction
// pipeline, so it never touches DecodeFrame.
package main

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vp8dixie/vp8go/vp8"
)

// ivfHeader is the 32-byte IVF container header (FourCC "VP80" is assumed;
// this tool doesn't validate the codec tag beyond the DKIF signature, since
// a non-VP8 FourCC will simply fail at DecodeFrameHeader's keyframe
// start-code check).
type ivfHeader struct {
	Signature    [4]byte
	Version      uint16
	HeaderLength uint16
	FourCC       [4]byte
	Width        uint16
	Height       uint16
	TimebaseNum  uint32
	TimebaseDen  uint32
	NumFrames    uint32
	Unused       uint32
}

func readIVFHeader(r io.Reader) (ivfHeader, error) {
	var h ivfHeader
	err := binary.Read(r, binary.LittleEndian, &h)
	if err == nil && string(h.Signature[:]) != "DKIF" {
		err = fmt.Errorf("not an IVF file (bad signature)")
	}
	return h, err
}

func readIVFFrame(r io.Reader) ([]byte, error) {
	var frameSize uint32
	var timestamp uint64
	if err := binary.Read(r, binary.LittleEndian, &frameSize); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &timestamp); err != nil {
		return nil, err
	}
	data := make([]byte, frameSize)
	_, err := io.ReadFull(r, data)
	return data, err
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	ivf, err := readIVFHeader(r)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d, %d frames\n", path, ivf.Width, ivf.Height, ivf.NumFrames)

	d := vp8.NewDecoder()
	for i := 0; ; i++ {
		frame, err := readIVFFrame(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("frame %d: %v", i, err)
		}

		d.Init(bytes.NewReader(frame), len(frame))
		fh, err := d.DecodeFrameHeader()
		if err != nil {
			fmt.Printf("frame %-4d size=%-8d error=%v\n", i, len(frame), err)
			continue
		}

		kind := "inter"
		if fh.KeyFrame {
			kind = "key"
		}
		shown := "shown"
		if !fh.Shown {
			shown = "hidden"
		}
		fmt.Printf("frame %-4d type=%-5s %-6s size=%-8d dims=%dx%d\n",
			i, kind, shown, len(frame), fh.Width, fh.Height)
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vp8info <file.ivf>")
		os.Exit(2)
	}
	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "vp8info:", err)
		os.Exit(1)
	}
}
