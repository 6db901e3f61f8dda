package http

// errorMessage is the body GitHub sends along with non-2xx responses.
type errorMessage struct {
	Message          string `json:"message,omitempty"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}
