package dto

// ChatRequest is one message to the assistant. PatientID optionally ties
// the conversation to a stored patient for contextual replies.
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	PatientID string `json:"patientId,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
