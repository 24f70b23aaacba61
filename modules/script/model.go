package script

import "storystream-pipeline-server/modules/common/model"

// WriteRequest asks for a spoken script rewritten from raw story content.
type WriteRequest struct {
	Content string `json:"content"`
	Tone    string `json:"tone"`
	Title   string `json:"title,omitempty"`
}

// WriteResponse returns the generated script.
type WriteResponse struct {
	Success      bool          `json:"success"`
	Script       *model.Script `json:"script,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
}
