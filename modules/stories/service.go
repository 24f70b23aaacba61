package stories

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

// NoResultsSentinel is returned on an empty-but-successful discovery
// response instead of an error.
const NoResultsSentinel = "No results found."

// StorySource labels where discovered narratives come from.
const StorySource = "Reddit (via Google Search)"

type Service struct {
	executor *gemini.Executor
	cfg      *config.Config
}

func NewService(executor *gemini.Executor, cfg *config.Config) *Service {
	return &Service{executor: executor, cfg: cfg}
}

// BuildFindPrompt asks for several distinct candidate narratives with
// separators the caller can parse.
func BuildFindPrompt(topic string) string {
	return fmt.Sprintf(`Search reddit.com for interesting threads or stories related to: %q.
Summarize 3 distinct potential stories found.
For each story, provide the Thread Title, a Summary of the plot/content, and the URL if available.
Format the output clearly with separators so I can parse it easily.`, topic)
}

// FindStories issues a grounded-search text request for the topic.
func (s *Service) FindStories(ctx context.Context, topic string) (string, error) {
	prompt := BuildFindPrompt(topic)

	text, _, err := gemini.Execute(ctx, s.executor, func(ctx context.Context, client *genai.Client) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, s.cfg.DiscoveryModel, genai.Text(prompt),
			&genai.GenerateContentConfig{
				Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️  [Stories] Empty discovery response for topic %q", topic)
		return NoResultsSentinel, nil
	}
	return text, nil
}

// BuildStory constructs the immutable story record for a discovery
// result. The id is a pure function of the result text.
func BuildStory(topic, results string) *model.Story {
	return &model.Story{
		ID:             model.StoryID(results),
		Title:          fmt.Sprintf("Search Result for: %s", topic),
		Summary:        results,
		OriginalSource: StorySource,
		Selected:       true,
	}
}
