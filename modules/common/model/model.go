package model

import (
	"fmt"
	"hash/fnv"
)

// Tone is the fixed set of script tones.
type Tone string

const (
	ToneHumorous    Tone = "humorous"
	ToneDramatic    Tone = "dramatic"
	ToneSuspenseful Tone = "suspenseful"
)

// ParseTone validates a tone label against the fixed enumeration.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneHumorous, ToneDramatic, ToneSuspenseful:
		return Tone(s), nil
	}
	return "", fmt.Errorf("unknown tone: %q", s)
}

// Story is one candidate narrative selected from a discovery result.
type Story struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	OriginalSource string `json:"originalSource"`
	Selected       bool   `json:"selected"`
}

// StoryID derives a deterministic identifier from the summary text, so
// the same discovery result maps to the same story across refreshes.
// Collisions are treated as identity, not an error.
func StoryID(summary string) string {
	h := fnv.New32a()
	h.Write([]byte(summary))
	return fmt.Sprintf("story-%x", h.Sum32())
}

// Script is the spoken narration produced by the rewrite step.
type Script struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tone    Tone   `json:"tone"`
}

// AssetKind discriminates the three generated media artifacts.
type AssetKind string

const (
	AssetAudio AssetKind = "audio"
	AssetVideo AssetKind = "video"
	AssetImage AssetKind = "image"
)

// ParseAssetKind validates an asset kind label.
func ParseAssetKind(s string) (AssetKind, error) {
	switch AssetKind(s) {
	case AssetAudio, AssetVideo, AssetImage:
		return AssetKind(s), nil
	}
	return "", fmt.Errorf("unknown asset kind: %q", s)
}

// Asset is one generated media artifact held in memory for the session.
type Asset struct {
	Kind     AssetKind `json:"kind"`
	URL      string    `json:"url"`
	MimeType string    `json:"mimeType"`
	Data     []byte    `json:"-"`
}
