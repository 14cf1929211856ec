// Package wld loads Serious Engine 1 world files into the owned model
// produced by the format package, and computes derived views over it for
// consoles and sidebars.
package wld

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/serioustools/wld/format"
)

// Document is one loaded world together with its parse narrative. The ID is
// generated at load time and identifies the document for the lifetime of a
// viewer session.
type Document struct {
	ID    uuid.UUID
	Name  string
	Path  string
	World *format.World
	Log   []Entry
}

// Load reads and parses a world file. The payload may optionally be wrapped
// in a zstd frame. sink receives the parse narrative as it happens and may
// be nil; the full narrative is also retained on the returned Document.
func Load(path string, sink format.LogFunc) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := LoadBytes(data, sink)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.Path = path
	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}

// LoadReader reads a complete world from r and parses it.
func LoadReader(r io.Reader, sink format.LogFunc) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	return LoadBytes(data, sink)
}

// LoadBytes parses an in-memory world buffer.
func LoadBytes(data []byte, sink format.LogFunc) (*Document, error) {
	data, err := maybeDecompress(data)
	if err != nil {
		return nil, err
	}

	rec := NewRecorder()
	log := rec.Func()
	if sink != nil {
		log = Tee(rec.Func(), sink)
	}

	world, err := format.Decode(data, log)
	if err != nil {
		return nil, err
	}
	return &Document{
		ID:    uuid.New(),
		Name:  world.Name,
		World: world,
		Log:   rec.Entries(),
	}, nil
}

// zstdMagic is the little-endian zstd frame magic number.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// maybeDecompress unwraps a zstd frame when the buffer starts with the zstd
// magic; plain WLD buffers pass through untouched.
func maybeDecompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress world: %w", err)
	}
	return out, nil
}
