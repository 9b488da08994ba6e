package domain

// ResponseType represents the kind of UI side-effect request
type ResponseType string

// Response types
const (
	ResponsePreviewPath  ResponseType = "PreviewPath"
	ResponseClearPreview ResponseType = "ClearPreview"
)

// Response is a side-effect request that is not a document mutation
type Response interface {
	Type() ResponseType
}

// PreviewPathResponse asks the host to draw an in-progress stroke overlay
type PreviewPathResponse struct {
	Points []ViewportPosition
}

func (r PreviewPathResponse) Type() ResponseType { return ResponsePreviewPath }

// ClearPreviewResponse asks the host to drop any in-progress overlay
type ClearPreviewResponse struct{}

func (r ClearPreviewResponse) Type() ResponseType { return ResponseClearPreview }
