// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdweb shows the panel in a web browser.
//
// Server is a display.Drawer and an http.Handler. Each GET request receives
// the current frame, then a new one every time the content changes, as a
// "multipart/x-mixed-replace" stream (Motion JPEG) that browsers display in
// an <img> tag. Frames are drawn with lcdshot so they look like the panel.
//
// The query parameters "format" (png or jpeg), "scale" (1 to MaxScale) and
// "once" (send a single image and close) override the defaults.
package lcdweb

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/GermanBionicSystems/lcd132/lcdshot"
	"periph.io/x/conn/v3/display"
)

// MaxScale is the largest scale a client can request.
const MaxScale = 16

// Format is the encoding of streamed frames.
type Format int

// Supported frame encodings.
const (
	PNG Format = iota
	JPEG
)

var formats = [...]struct {
	name string
	mime string
}{
	PNG:  {"PNG", "image/png"},
	JPEG: {"JPEG", "image/jpeg"},
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formats) {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formats[f].name
}

func (f Format) mimeType() string {
	if f < 0 || int(f) >= len(formats) {
		return "application/octet-stream"
	}
	return formats[f].mime
}

// ParseFormat returns the Format named by a file extension, with or without
// the leading dot, in any case.
func ParseFormat(ext string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return PNG, fmt.Errorf("lcdweb: unrecognized image format %q", ext)
}

// Opts defines the options for the server.
type Opts struct {
	W int
	H int
	// Format is sent when the request does not ask for one.
	Format Format
	// Shot controls how frames are drawn. nil means lcdshot.DefaultOpts.
	Shot *lcdshot.Opts
	// Keepalive resends the current frame when nothing changed for that
	// long. 0 disables it.
	Keepalive time.Duration
}

// DefaultOpts is the reference panel, streamed as PNG.
var DefaultOpts = Opts{
	W:         framebuf.LCDWidth,
	H:         framebuf.LCDHeight,
	Format:    PNG,
	Keepalive: 5 * time.Second,
}

// Server streams the panel to HTTP clients.
type Server struct {
	format    Format
	shot      lcdshot.Opts
	keepalive time.Duration

	mu      sync.Mutex
	fb      *framebuf.Buffer
	prev    []byte
	frames  int
	clients map[*client]struct{}
	cache   map[imageConfig][]byte
}

// New returns a server showing a blank panel.
func New(opts *Opts) *Server {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = framebuf.LCDWidth
	}
	if h <= 0 {
		h = framebuf.LCDHeight
	}
	shot := lcdshot.DefaultOpts
	if opts.Shot != nil {
		shot = *opts.Shot
	}
	fb := framebuf.New(w, (h+7)&^7)
	return &Server{
		format:    opts.Format,
		shot:      shot,
		keepalive: opts.Keepalive,
		fb:        fb,
		prev:      make([]byte, len(fb.Pix)),
		clients:   map[*client]struct{}{},
		cache:     map[imageConfig][]byte{},
	}
}

func (s *Server) String() string {
	return fmt.Sprintf("lcdweb.Server{%dx%d}", s.fb.W, s.fb.H)
}

// Halt implements conn.Resource and ends all running streams.
func (s *Server) Halt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.terminate <- struct{}{}:
		default:
		}
	}
	return nil
}

// ColorModel implements display.Drawer.
func (s *Server) ColorModel() color.Model {
	return framebuf.BitModel
}

// Bounds implements display.Drawer.
func (s *Server) Bounds() image.Rectangle {
	return s.fb.Bounds()
}

// Draw implements display.Drawer.
//
// Clients are only woken up when the frame differs from the previous one.
func (s *Server) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.prev, s.fb.Pix)
	draw.Src.Draw(s.fb, r, src, sp)
	if bytes.Equal(s.prev, s.fb.Pix) {
		return nil
	}
	s.frames++
	clear(s.cache)
	for c := range s.clients {
		select {
		case c.refresh <- struct{}{}:
		default:
		}
	}
	return nil
}

// Frames returns the number of distinct frames drawn so far.
func (s *Server) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

var _ display.Drawer = &Server{}
var _ http.Handler = &Server{}
