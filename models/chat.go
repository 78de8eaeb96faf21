package models

// ChatMessage is one turn of the assistant conversation. Role is either
// "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body sent to the external chat completion endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the pinned response schema of the chat endpoint. The
// reply must arrive under "content"; anything else is rejected.
type ChatResponse struct {
	Content string `json:"content"`
}
