package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/utils"
)

// WebSocketService streams summarization progress to the client: one
// frame per summarized chunk, then the final result. Useful for book-size
// uploads where a single HTTP response would sit silent for minutes.
type WebSocketService struct {
	pipeline    *PipelineService
	pdfService  *PDFService
	fileService *FileService
	defaults    types.SummarizeOptions
	upgrader    websocket.Upgrader
}

func NewWebSocketService(pipeline *PipelineService, pdfService *PDFService, fileService *FileService, defaults types.SummarizeOptions) *WebSocketService {
	return &WebSocketService{
		pipeline:    pipeline,
		pdfService:  pdfService,
		fileService: fileService,
		defaults:    defaults,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

// HandleSummarize upgrades the connection and serves summarize requests
// until the client disconnects.
func (s *WebSocketService) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		var req types.WebSocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebSocketPing:
			if err := conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebSocketPong}); err != nil {
				log.Println("Write error:", err)
			}

		case types.TypeWebSocketSummarize:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			var payload types.WebSocketSummarizePayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			// The pipeline can take minutes; stop the read deadline from
			// killing the connection mid-run.
			conn.SetReadDeadline(time.Time{})
			s.summarizeStored(r.Context(), conn, payload)
			conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		default:
			s.writeError(conn, "invalid message type")
		}
	}
}

func (s *WebSocketService) summarizeStored(ctx context.Context, conn *websocket.Conn, payload types.WebSocketSummarizePayload) {
	data, err := s.fileService.ReadStored(payload.File)
	if err != nil {
		s.writeError(conn, "file not found: "+payload.File)
		return
	}

	doc, err := s.pdfService.ExtractText(data)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	opts := payload.Options.Options(s.defaults)
	result, err := s.pipeline.Summarize(ctx, doc.Text, opts, func(status types.ProcessingStatus) {
		if werr := conn.WriteJSON(types.WebSocketResponse{
			Type:    types.TypeWebSocketProcessing,
			Payload: status,
		}); werr != nil {
			log.Println("Write error:", werr)
		}
	})
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	response := types.WebSocketResponse{
		Type: types.TypeWebSocketResult,
		Payload: types.SummarizeResponse{
			Summary:            result.Summary,
			ChunkSummaries:     result.ChunkSummaries,
			Statistics:         result.Statistics,
			OriginalStatistics: utils.GetTextStatistics(doc.Text),
		},
	}
	if err := conn.WriteJSON(response); err != nil {
		log.Println("Write error:", err)
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebSocketError,
		Payload: types.WebSocketErrorPayload{Message: message},
	}); err != nil {
		log.Println("Write error:", err)
	}
}
