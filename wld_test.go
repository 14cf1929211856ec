package wld

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serioustools/wld/format"
)

// worldBytes assembles a small well-formed WLD buffer. withInfo controls the
// presence of the WLIF block so name-fallback behavior can be exercised.
func worldBytes(t *testing.T, withInfo bool) []byte {
	t.Helper()
	var b bytes.Buffer
	le := func(v uint32) {
		require.NoError(t, binary.Write(&b, binary.LittleEndian, v))
	}
	str := func(s string) {
		le(uint32(len(s)))
		b.WriteString(s)
	}

	b.WriteString("WRLD")
	b.WriteString("WSTA")
	le(1) // state version
	if withInfo {
		b.WriteString("WLIF")
		str("Sierra de Chiapas")
		le(0) // spawn flags
		str("opening level")
	}
	le(0xFF102030) // background color
	b.WriteString("WEND")
	return b.Bytes()
}

func TestLoadBytes(t *testing.T) {
	doc, err := LoadBytes(worldBytes(t, true), nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, "Sierra de Chiapas", doc.Name)
	assert.Equal(t, uint32(0xFF102030), doc.World.BackgroundColor)
	assert.NotEmpty(t, doc.Log)
}

func TestLoadBytesZstd(t *testing.T) {
	plain := worldBytes(t, true)

	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := encoder.EncodeAll(plain, nil)
	require.NoError(t, encoder.Close())

	doc, err := LoadBytes(compressed, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sierra de Chiapas", doc.Name)
	assert.Equal(t, uint32(0xFF102030), doc.World.BackgroundColor)
}

func TestLoadFileNameFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canyon.wld")
	require.NoError(t, os.WriteFile(path, worldBytes(t, false), 0o644))

	doc, err := Load(path, nil)
	require.NoError(t, err)

	// No WLIF block: the display name falls back to the file name.
	assert.Equal(t, "canyon", doc.Name)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "", doc.World.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.wld"), nil)
	require.Error(t, err)
}

func TestLoadBytesFatalParse(t *testing.T) {
	rec := NewRecorder()
	_, err := LoadBytes([]byte("WSTAtrailing"), rec.Func())
	require.ErrorIs(t, err, format.ErrUnexpectedChunk)

	// The fatal event still reached the caller's sink.
	assert.Equal(t, 1, rec.Count(format.LevelError))
}

func TestLoadBytesStreamsToSink(t *testing.T) {
	var seen []Entry
	sink := func(level format.Level, msg string) {
		seen = append(seen, Entry{Level: level, Message: msg})
	}

	doc, err := LoadBytes(worldBytes(t, true), sink)
	require.NoError(t, err)

	// The external sink and the retained narrative see the same events in
	// the same order.
	assert.Equal(t, doc.Log, seen)
}

func TestRecorderOrderAndCounts(t *testing.T) {
	rec := NewRecorder()
	sink := rec.Func()
	sink(format.LevelInfo, "one")
	sink(format.LevelWarn, "two")
	sink(format.LevelInfo, "three")

	entries := rec.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "one", entries[0].Message)
	assert.Equal(t, "two", entries[1].Message)
	assert.Equal(t, "three", entries[2].Message)
	assert.Equal(t, 2, rec.Count(format.LevelInfo))
	assert.Equal(t, 1, rec.Count(format.LevelWarn))
	assert.Equal(t, 0, rec.Count(format.LevelError))
}

func TestTee(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	sink := Tee(a.Func(), nil, b.Func())

	sink(format.LevelSuccess, "done")

	require.Len(t, a.Entries(), 1)
	require.Len(t, b.Entries(), 1)
	assert.Equal(t, a.Entries(), b.Entries())
}
