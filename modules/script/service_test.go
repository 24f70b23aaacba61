package script

import (
	"strings"
	"testing"

	"storystream-pipeline-server/modules/common/model"
)

func TestBuildWritePromptPassesToneVerbatim(t *testing.T) {
	for _, tone := range []model.Tone{model.ToneHumorous, model.ToneDramatic, model.ToneSuspenseful} {
		prompt := BuildWritePrompt("some raw story", tone)
		if !strings.Contains(prompt, "Tone: "+string(tone)) {
			t.Errorf("prompt for %s missing verbatim tone label", tone)
		}
	}
}

func TestBuildWritePromptIncludesContentAndConstraints(t *testing.T) {
	prompt := BuildWritePrompt("the original thread content", model.ToneDramatic)

	if !strings.Contains(prompt, "the original thread content") {
		t.Error("prompt missing the original content")
	}
	if !strings.Contains(prompt, "spoken narration text ONLY") {
		t.Error("prompt missing the narration-only constraint")
	}
	if !strings.Contains(prompt, "pick the single most interesting one") {
		t.Error("prompt missing the single-story selection instruction")
	}
}
