package handlers

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReplyResponse carries the assistant's reply for a chat turn.
type ReplyResponse struct {
	Reply string `json:"reply"`
}

// ChatListResponse is the DTO for the chat listing endpoint.
type ChatListResponse struct {
	ChatIDs []string `json:"chatIds"`
}

// DeleteResponse acknowledges a successful chat deletion.
type DeleteResponse struct {
	OK bool `json:"ok"`
}
