package core

// ResponseBase is the envelope of every directory and hook response
type ResponseBase[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content"`
	Error   string `json:"error,omitempty"`
}
