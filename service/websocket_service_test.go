package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

func dialWebSocket(t *testing.T, ws *WebSocketService) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(ws.HandleSummarize))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func newTestWebSocketService(t *testing.T) *WebSocketService {
	t.Helper()
	pipeline := NewPipelineService(stubRegistry(&stubEngine{}), 3)
	fileService, err := NewFileService(t.TempDir())
	require.NoError(t, err)
	return NewWebSocketService(pipeline, NewPDFService(50), fileService, types.SummarizeOptions{
		ModelName: "t5-small", MaxLength: 150, MinLength: 50, ChunkSize: 1000, ChunkOverlap: 100,
	})
}

func readResponse(t *testing.T, conn *websocket.Conn) types.WebSocketResponse {
	t.Helper()
	var resp types.WebSocketResponse
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestWebSocketPingPong(t *testing.T) {
	ws := newTestWebSocketService(t)
	conn := dialWebSocket(t, ws)

	require.NoError(t, conn.WriteJSON(types.WebSocketRequest{Type: types.TypeWebSocketPing}))
	resp := readResponse(t, conn)
	assert.Equal(t, types.TypeWebSocketPong, resp.Type)
}

func TestWebSocketRejectsMalformedMessages(t *testing.T) {
	ws := newTestWebSocketService(t)
	conn := dialWebSocket(t, ws)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	resp := readResponse(t, conn)
	assert.Equal(t, types.TypeWebSocketError, resp.Type)

	require.NoError(t, conn.WriteJSON(types.WebSocketRequest{Type: "unknown"}))
	resp = readResponse(t, conn)
	assert.Equal(t, types.TypeWebSocketError, resp.Type)
}

func TestWebSocketSummarizeUnknownFile(t *testing.T) {
	ws := newTestWebSocketService(t)
	conn := dialWebSocket(t, ws)

	require.NoError(t, conn.WriteJSON(types.WebSocketRequest{
		Type:    types.TypeWebSocketSummarize,
		Payload: types.WebSocketSummarizePayload{File: "never-uploaded.pdf"},
	}))
	resp := readResponse(t, conn)
	assert.Equal(t, types.TypeWebSocketError, resp.Type)

	payload, err := json.Marshal(resp.Payload)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "never-uploaded.pdf")
}
