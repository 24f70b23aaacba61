package script

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"storystream-pipeline-server/modules/common/config"
	"storystream-pipeline-server/modules/common/gemini"
	"storystream-pipeline-server/modules/common/model"
)

// FailedSentinel is returned on an empty-but-successful rewrite
// response instead of an error.
const FailedSentinel = "Failed to generate script."

// DefaultTitle is used when the caller does not name the video.
const DefaultTitle = "New Video"

// thinkingBudget gives the rewrite a bit of thought for creativity.
const thinkingBudget int32 = 1024

type Service struct {
	executor *gemini.Executor
	cfg      *config.Config
}

func NewService(executor *gemini.Executor, cfg *config.Config) *Service {
	return &Service{executor: executor, cfg: cfg}
}

// BuildWritePrompt instructs the model to pick the single best narrative
// and rewrite it as spoken-only narration in the requested tone. The
// tone label is passed through verbatim.
func BuildWritePrompt(content string, tone model.Tone) string {
	return fmt.Sprintf(`Act as a professional YouTube scriptwriter.
Take the following raw story/content and rewrite it into a short, engaging video script (approx 60-90 seconds spoken).
If the content contains multiple stories or summaries, pick the single most interesting one to focus on.

Tone: %s (Make it hook the viewer immediately).
Style: Conversational, human-written, storytelling format.

Original Content:
%s

Output the spoken narration text ONLY. Do not include scene descriptions, visual cues, or character names. Just the raw text to be spoken.`, tone, content)
}

// WriteScript rewrites raw story content into a tone-tagged script.
func (s *Service) WriteScript(ctx context.Context, content string, tone model.Tone, title string) (*model.Script, error) {
	prompt := BuildWritePrompt(content, tone)

	text, _, err := gemini.Execute(ctx, s.executor, func(ctx context.Context, client *genai.Client) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, s.cfg.ScriptModel, genai.Text(prompt),
			&genai.GenerateContentConfig{
				ThinkingConfig: &genai.ThinkingConfig{
					ThinkingBudget: genai.Ptr(thinkingBudget),
				},
			})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️  [Script] Empty rewrite response (tone: %s)", tone)
		text = FailedSentinel
	}

	if title == "" {
		title = DefaultTitle
	}

	return &model.Script{
		Title:   title,
		Content: text,
		Tone:    tone,
	}, nil
}
