package api

import (
	"io"
	"os"
	"path/filepath"
)

// AudioInput wraps an audio payload headed for upload.
type AudioInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// AudioResponse holds generated audio returned by a synthesis endpoint.
type AudioResponse struct {
	Content     []byte
	ContentType string
}

// Save writes the audio bytes to the given path.
func (r *AudioResponse) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, r.Content, 0o644)
}

// TranscriptionResponse holds transcribed text plus any extra fields the
// backend returned alongside it.
type TranscriptionResponse struct {
	Text     string
	Metadata map[string]any
}

func (r *TranscriptionResponse) String() string {
	return r.Text
}
