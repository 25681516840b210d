package models

// UploadRequest carries a webcam capture as a base64 data-URI.
type UploadRequest struct {
	Image string `json:"image" binding:"required"`
}

// UploadResponse reports the outcome of an image upload.
type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ImageID string `json:"image_id,omitempty"`
}

// StatusResponse reports whether any uploads are still awaiting
// classification.
type StatusResponse struct {
	Pending bool `json:"pending"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
