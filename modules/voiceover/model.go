package voiceover

// GenerateRequest asks for a voiceover of the script text.
type GenerateRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

// GenerateResponse points at the stored audio asset.
type GenerateResponse struct {
	Success      bool   `json:"success"`
	AudioURL     string `json:"audio_url,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
