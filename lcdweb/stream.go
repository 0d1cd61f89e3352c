// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdweb

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/GermanBionicSystems/lcd132/lcdshot"
)

type imageConfig struct {
	format Format
	scale  int
}

type client struct {
	refresh   chan struct{}
	terminate chan struct{}
}

type encoderPool sync.Pool

func (p *encoderPool) Get() *png.EncoderBuffer {
	buf, _ := (*sync.Pool)(p).Get().(*png.EncoderBuffer)
	return buf
}

func (p *encoderPool) Put(buf *png.EncoderBuffer) {
	(*sync.Pool)(p).Put(buf)
}

var pngEncoder = png.Encoder{
	CompressionLevel: png.BestSpeed,
	BufferPool:       &encoderPool{},
}

func (s *Server) configFromQuery(values url.Values) (imageConfig, error) {
	cfg := imageConfig{format: s.format, scale: s.shot.Scale}
	if v := values.Get("format"); v != "" {
		f, err := ParseFormat(v)
		if err != nil {
			return imageConfig{}, err
		}
		cfg.format = f
	}
	if v := values.Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxScale {
			return imageConfig{}, fmt.Errorf("lcdweb: invalid scale %q", v)
		}
		cfg.scale = n
	}
	return cfg, nil
}

// snapshot returns the current frame encoded per cfg. The returned slice is
// shared and must not be modified.
func (s *Server) snapshot(cfg imageConfig) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.cache[cfg]; ok {
		return b, nil
	}
	opts := s.shot
	opts.Scale = cfg.scale
	img, err := lcdshot.Render(s.fb, &opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch cfg.format {
	case PNG:
		err = pngEncoder.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	default:
		err = fmt.Errorf("lcdweb: unhandled image format %s", cfg.format)
	}
	if err != nil {
		return nil, err
	}
	s.cache[cfg] = buf.Bytes()
	return buf.Bytes(), nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.Body.Close(); err != nil {
		log.Printf("lcdweb: closing request body: %v", err)
	}
	if r.Method != http.MethodGet {
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	cfg, err := s.configFromQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if q.Get("once") != "" {
		payload, err := s.snapshot(cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", cfg.format.mimeType())
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
		return
	}

	pw := newPartWriter(w)
	w.Header().Set("Content-Type", mime.FormatMediaType("multipart/x-mixed-replace", map[string]string{
		"boundary": pw.boundary,
	}))

	c := &client{
		refresh:   make(chan struct{}, 1),
		terminate: make(chan struct{}, 1),
	}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
	}()

	var keepalive <-chan time.Time
	if s.keepalive > 0 {
		t := time.NewTicker(s.keepalive)
		defer t.Stop()
		keepalive = t.C
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", cfg.format.mimeType())
	header.Set("Content-Transfer-Encoding", "binary")
	for {
		payload, err := s.snapshot(cfg)
		if err != nil {
			log.Printf("lcdweb: %v", err)
			return
		}
		// Errors end the stream silently; an image stream has no way to
		// carry an error message.
		if err := pw.writeFrame(header, payload); err != nil {
			return
		}
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		select {
		case <-c.refresh:
		case <-keepalive:
		case <-c.terminate:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// randomBoundary generates a MIME multipart boundary compatible with RFC 2046
// (section 5.1.1).
func randomBoundary() string {
	var buf [34]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", buf[:])
}

type partWriter struct {
	w        io.Writer
	boundary string
	started  bool
}

func newPartWriter(w io.Writer) *partWriter {
	return &partWriter{w: w, boundary: randomBoundary()}
}

// writeFrame sends one part of a never ending multipart entity, followed by
// the boundary so the client can show it right away.
//
// header is modified to carry the Content-Length.
func (p *partWriter) writeFrame(header textproto.MIMEHeader, body []byte) error {
	header.Set("Content-Length", strconv.Itoa(len(body)))
	var buf bytes.Buffer
	if !p.started {
		fmt.Fprintf(&buf, "--%s\r\n", p.boundary)
		p.started = true
	}
	for name, values := range header {
		for _, v := range values {
			fmt.Fprintf(&buf, "%s: %s\r\n", name, v)
		}
	}
	buf.WriteString("\r\n")
	buf.Write(body)
	fmt.Fprintf(&buf, "\r\n--%s\r\n", p.boundary)
	_, err := buf.WriteTo(p.w)
	return err
}
