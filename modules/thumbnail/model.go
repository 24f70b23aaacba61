package thumbnail

// GenerateRequest asks for a thumbnail image about a topic.
type GenerateRequest struct {
	SessionID string `json:"sessionId"`
	Topic     string `json:"topic"`
}

// GenerateResponse carries a directly embeddable data URL plus the
// stored asset location.
type GenerateResponse struct {
	Success      bool   `json:"success"`
	DataURL      string `json:"data_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
