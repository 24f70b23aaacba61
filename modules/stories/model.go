package stories

import "storystream-pipeline-server/modules/common/model"

// FindRequest asks for candidate stories about a topic.
type FindRequest struct {
	Topic string `json:"topic"`
}

// FindResponse carries the raw discovery text.
type FindResponse struct {
	Success      bool   `json:"success"`
	Results      string `json:"results,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// SelectRequest turns a discovery result into a story record.
type SelectRequest struct {
	Topic   string `json:"topic"`
	Results string `json:"results"`
}

// SelectResponse returns the constructed story.
type SelectResponse struct {
	Success      bool         `json:"success"`
	Story        *model.Story `json:"story,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}
