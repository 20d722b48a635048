package server

// ConvertRequest is the request body for a conversion.
type ConvertRequest struct {
	URL           string `json:"url"`
	CookieContent string `json:"cookieContent,omitempty"`
}

// ConvertResponse is the success payload of a conversion.
type ConvertResponse struct {
	Message     string `json:"message"`
	DownloadURL string `json:"downloadUrl"`
	Title       string `json:"title"`
}

// UploadCookiesRequest is the request body for persisting cookies.
type UploadCookiesRequest struct {
	CookieContent string `json:"cookieContent"`
}

// MessageResponse represents a generic message payload used for success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents a generic error payload used for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
