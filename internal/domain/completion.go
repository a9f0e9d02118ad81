package domain

// CompletionRequest is one call to the external text/vision model.
type CompletionRequest struct {
	// Purpose labels the call in logs (e.g. "outro_content").
	Purpose   string
	System    string
	Prompt    string
	Images    []Image
	MaxTokens int64
}

// Image is an inline image sent along with a completion prompt.
type Image struct {
	MediaType string
	Data      []byte
}
