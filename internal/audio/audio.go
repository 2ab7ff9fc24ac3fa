// Package audio normalizes caller-supplied audio sources (file paths, raw
// bytes, open readers) into the upload shape the transport expects.
package audio

import (
	"bytes"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/hathora/hathora-go/pkg/api"
)

// extToMime covers the audio extensions mime.TypeByExtension tends to miss.
var extToMime = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".mp4":  "audio/mp4",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".pcm":  "audio/pcm",
}

// MimeForPath resolves the audio content type for a file path, defaulting to
// audio/wav when nothing better is known.
func MimeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if m, ok := extToMime[ext]; ok {
		return m
	}
	if m := mime.TypeByExtension(ext); strings.HasPrefix(m, "audio/") {
		return m
	}
	return "audio/wav"
}

// SupportedFormat reports whether the path carries a recognized audio
// extension.
func SupportedFormat(path string) bool {
	_, ok := extToMime[strings.ToLower(filepath.Ext(path))]
	return ok
}

// FromFile opens a file as an audio input. The caller owns the returned
// reader; Close releases the underlying file.
func FromFile(path string) (*api.AudioInput, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &api.FileError{Path: path, Message: "file not found"}
		}
		return nil, &api.FileError{Path: path, Message: err.Error()}
	}
	return &api.AudioInput{
		Reader:      f,
		Filename:    filepath.Base(path),
		ContentType: MimeForPath(path),
	}, nil
}

// FromBytes wraps raw audio bytes.
func FromBytes(b []byte) *api.AudioInput {
	return &api.AudioInput{
		Reader:      bytes.NewReader(b),
		Filename:    "audio",
		ContentType: "audio/wav",
	}
}

// FromReader wraps an open reader. The name, when non-empty, is used for the
// upload filename and content-type guess.
func FromReader(r io.Reader, name string) *api.AudioInput {
	in := &api.AudioInput{Reader: r, Filename: "audio", ContentType: "audio/wav"}
	if name != "" {
		in.Filename = filepath.Base(name)
		in.ContentType = MimeForPath(name)
	}
	return in
}

// Normalize accepts the supported audio source kinds and converts them to an
// AudioInput. Anything else is a FileError.
func Normalize(v any) (*api.AudioInput, error) {
	switch src := v.(type) {
	case *api.AudioInput:
		return src, nil
	case api.AudioInput:
		return &src, nil
	case string:
		return FromFile(src)
	case []byte:
		return FromBytes(src), nil
	case io.Reader:
		return FromReader(src, ""), nil
	default:
		return nil, &api.FileError{Message: "unsupported audio source type"}
	}
}

// Close releases the input's reader when it holds one of ours that needs
// closing (file-backed sources).
func Close(in *api.AudioInput) {
	if in == nil {
		return
	}
	if c, ok := in.Reader.(io.Closer); ok {
		_ = c.Close()
	}
}
