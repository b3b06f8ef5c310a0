package types

const (
	TypeWebSocketPing       = "ping"
	TypeWebSocketPong       = "pong"
	TypeWebSocketSummarize  = "summarize"
	TypeWebSocketProcessing = "processing"
	TypeWebSocketResult     = "result"
	TypeWebSocketError      = "error"
)

type WebSocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WebSocketSummarizePayload asks the server to summarize a previously
// uploaded file, streaming per-chunk progress back over the socket.
type WebSocketSummarizePayload struct {
	File    string           `json:"file"`
	Options SummarizeRequest `json:"options"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketErrorPayload struct {
	Message string `json:"message"`
}
