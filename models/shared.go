package models

// CompletionPayload is the body of the completion sweep task.
type CompletionPayload struct {
	// Trigger records who enqueued the sweep ("scheduler" or "startup").
	Trigger string `json:"trigger,omitempty"`
}
