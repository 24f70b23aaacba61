package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"

	"storystream-pipeline-server/modules/assets"
	"storystream-pipeline-server/modules/common/codec"
	"storystream-pipeline-server/modules/common/config"
	"storystream-pipeline-server/modules/common/gemini"
	"storystream-pipeline-server/modules/common/images"
	"storystream-pipeline-server/modules/common/model"
)

// ErrNoImage signals a successful response without an inline image
// payload. Never retried.
var ErrNoImage = errors.New("no image generated")

// webpQuality for the stored variant of generated thumbnails.
const webpQuality float32 = 85

type Service struct {
	executor *gemini.Executor
	cfg      *config.Config
	store    *assets.Store
}

func NewService(executor *gemini.Executor, cfg *config.Config, store *assets.Store) *Service {
	return &Service{executor: executor, cfg: cfg, store: store}
}

// BuildThumbnailPrompt builds the fixed thumbnail prompt for a topic.
func BuildThumbnailPrompt(topic string) string {
	return fmt.Sprintf("A youtube video thumbnail for a story about %s. High contrast, shocking, catchy, 4k resolution, hyper realistic.", topic)
}

// GenerateThumbnail requests an image-modality response and returns the
// PNG as a data URL. The stored copy is re-encoded as WebP when the
// conversion succeeds, since bundles live in memory for the session.
func (s *Service) GenerateThumbnail(ctx context.Context, sessionID, topic string) (*model.Asset, string, error) {
	prompt := BuildThumbnailPrompt(topic)

	pngData, _, err := gemini.Execute(ctx, s.executor, func(ctx context.Context, client *genai.Client) ([]byte, error) {
		resp, err := client.Models.GenerateContent(ctx, s.cfg.ImageModel, genai.Text(prompt),
			&genai.GenerateContentConfig{
				ImageConfig: &genai.ImageConfig{
					AspectRatio: s.cfg.VideoAspectRatio,
				},
			})
		if err != nil {
			return nil, err
		}
		return extractInlineImage(resp)
	})
	if err != nil {
		return nil, "", err
	}

	dataURL := codec.DataURL("image/png", pngData)

	stored := pngData
	mimeType := "image/png"
	if webpData, err := images.ConvertPNGToWebP(pngData, webpQuality); err == nil {
		stored = webpData
		mimeType = "image/webp"
	} else {
		log.Printf("⚠️  [Thumbnail] WebP conversion failed, storing PNG: %v", err)
	}

	asset := &model.Asset{
		Kind:     model.AssetImage,
		URL:      fmt.Sprintf("/api/assets/%s/image", sessionID),
		MimeType: mimeType,
		Data:     stored,
	}
	s.store.Set(sessionID, asset)

	log.Printf("🖼️  [Thumbnail] Generated thumbnail for session %s (%d bytes stored)", sessionID, len(stored))
	return asset, dataURL, nil
}

func extractInlineImage(resp *genai.GenerateContentResponse) ([]byte, error) {
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, ErrNoImage
}
