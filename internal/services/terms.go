package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/localnerve/eventreg/data"
	"github.com/yuin/goldmark"
)

// WaiverTerms is the rendered waiver text the participant agrees to
type WaiverTerms struct {
	Version string `json:"version"`
	HTML    string `json:"html"`
}

// RenderWaiverTerms renders the embedded waiver Markdown.
// Version is a content hash so clients can tell which text was shown.
func RenderWaiverTerms() (WaiverTerms, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(data.WaiverTerms), &buf); err != nil {
		return WaiverTerms{}, err
	}

	sum := sha256.Sum256([]byte(data.WaiverTerms))
	return WaiverTerms{
		Version: hex.EncodeToString(sum[:6]),
		HTML:    buf.String(),
	}, nil
}
