package voiceover

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
	"storystream-pipeline-server/modules/common/model"
)

// ErrNoAudio signals a successful TTS response without an inline audio
// payload. Never retried.
var ErrNoAudio = errors.New("no audio generated")

type Service struct {
	executor *gemini.Executor
	cfg      *config.Config
	store    *assets.Store
}

func NewService(executor *gemini.Executor, cfg *config.Config, store *assets.Store) *Service {
	return &Service{executor: executor, cfg: cfg, store: store}
}

// GenerateVoiceover requests an audio-modality response for the text,
// wraps the raw PCM payload in a WAV container and stores it as the
// session's audio asset.
func (s *Service) GenerateVoiceover(ctx context.Context, sessionID, text string) (*model.Asset, error) {
	pcm, _, err := gemini.Execute(ctx, s.executor, func(ctx context.Context, client *genai.Client) ([]byte, error) {
		resp, err := client.Models.GenerateContent(ctx, s.cfg.TTSModel, genai.Text(text),
			&genai.GenerateContentConfig{
				ResponseModalities: []string{"AUDIO"},
				SpeechConfig: &genai.SpeechConfig{
					VoiceConfig: &genai.VoiceConfig{
						PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
							VoiceName: s.cfg.TTSVoice,
						},
					},
				},
			})
		if err != nil {
			return nil, err
		}
		return extractInlineAudio(resp)
	})
	if err != nil {
		return nil, err
	}

	wav := codec.PCMToWAV(pcm, codec.DefaultSampleRate, codec.DefaultChannels, codec.DefaultBitsPerSample)
	log.Printf("🔊 [Voiceover] Generated %d PCM bytes, %d byte WAV", len(pcm), len(wav))

	asset := &model.Asset{
		Kind:     model.AssetAudio,
		URL:      fmt.Sprintf("/api/assets/%s/audio", sessionID),
		MimeType: "audio/wav",
		Data:     wav,
	}
	s.store.Set(sessionID, asset)
	return asset, nil
}

// extractInlineAudio pulls the first inline audio payload out of a
// generation response.
func extractInlineAudio(resp *genai.GenerateContentResponse) ([]byte, error) {
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
	return nil, ErrNoAudio
}
