package thumbnail

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestBuildThumbnailPrompt(t *testing.T) {
	prompt := BuildThumbnailPrompt("tech disaster")

	if !strings.Contains(prompt, "tech disaster") {
		t.Error("prompt missing the topic")
	}
	if !strings.Contains(prompt, "youtube video thumbnail") {
		t.Error("prompt missing the thumbnail framing")
	}
}

func TestExtractInlineImageMissingPayload(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "no image here"}}}},
		},
	}
	if _, err := extractInlineImage(resp); !errors.Is(err, ErrNoImage) {
		t.Errorf("err = %v, want ErrNoImage", err)
	}
}

func TestExtractInlineImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{Data: png, MIMEType: "image/png"}},
			}}},
		},
	}

	got, err := extractInlineImage(resp)
	if err != nil {
		t.Fatalf("extractInlineImage failed: %v", err)
	}
	if len(got) != len(png) {
		t.Errorf("extracted %d bytes, want %d", len(got), len(png))
	}
}
