package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/certsprint/ppt-lms-backend/internal/middleware"
	"github.com/certsprint/ppt-lms-backend/internal/service"
	ws "github.com/certsprint/ppt-lms-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams mock exam attempt updates over a WebSocket so the
// client can autosave answers and sync the timer without HTTP round trips.
type WSHandler struct {
	attemptService *service.AttemptService
	log            zerolog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(attemptService *service.AttemptService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		attemptService: attemptService,
		log:            log.With().Str("component", "ws_handler").Logger(),
		upgrader:       buildUpgrader(allowedOrigins),
	}
}

// AttemptStream godoc
// WS /ws/v1/student/mock-exam/stream
// Upgrades to WebSocket for real-time answer saving and timer sync.
func (h *WSHandler) AttemptStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	meta := service.ClientMeta{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
	userID := claims.UserID
	classID := claims.ClassID

	wsLog := h.log.With().Int("user_id", userID).Logger()
	wsLog.Info().Msg("Student connected")

	for {
		var msg ws.RequestPayload
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			break
		}

		switch msg.Action {
		case ws.ActionSaveAnswer:
			h.handleSaveAnswer(conn, wsLog, userID, classID, meta, &msg)
		case ws.ActionFlag:
			h.handleFlag(conn, wsLog, userID, classID, meta, &msg)
		case ws.ActionSaveTime:
			h.handleSaveTime(conn, wsLog, userID, classID, meta, &msg)
		case ws.ActionSubmit:
			h.handleSubmit(conn, wsLog, userID, classID, meta)
		case ws.ActionPing:
			ws.WriteJSON(conn, ws.EventPong, nil)
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			ws.WriteError(conn, "unknown action: "+string(msg.Action))
		}
	}
}

func (h *WSHandler) handleSaveAnswer(conn *websocket.Conn, wsLog zerolog.Logger, userID int, classID *int, meta service.ClientMeta, msg *ws.RequestPayload) {
	ctx := context.Background()

	if msg.Question < 1 || msg.Answer == "" {
		ws.WriteError(conn, "question and answer are required")
		return
	}

	if err := h.attemptService.Answer(ctx, userID, classID, service.DefaultExamType, msg.Question, msg.Answer, meta); err != nil {
		if errors.Is(err, service.ErrAttemptNotStarted) {
			ws.WriteError(conn, "no attempt in progress")
			return
		}
		wsLog.Error().Err(err).Int("question", msg.Question).Msg("Answer save error")
		ws.WriteError(conn, "save failed")
		return
	}

	ws.WriteJSON(conn, ws.EventSuccess, map[string]interface{}{"status": "saved", "question": msg.Question})
}

func (h *WSHandler) handleFlag(conn *websocket.Conn, wsLog zerolog.Logger, userID int, classID *int, meta service.ClientMeta, msg *ws.RequestPayload) {
	ctx := context.Background()

	if msg.Question < 1 {
		ws.WriteError(conn, "question is required")
		return
	}

	flagged, err := h.attemptService.Flag(ctx, userID, classID, service.DefaultExamType, msg.Question, meta)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotStarted) {
			ws.WriteError(conn, "no attempt in progress")
			return
		}
		wsLog.Error().Err(err).Int("question", msg.Question).Msg("Flag toggle error")
		ws.WriteError(conn, "flag failed")
		return
	}

	ws.WriteJSON(conn, ws.EventSuccess, map[string]interface{}{"question": msg.Question, "flagged": flagged})
}

func (h *WSHandler) handleSaveTime(conn *websocket.Conn, wsLog zerolog.Logger, userID int, classID *int, meta service.ClientMeta, msg *ws.RequestPayload) {
	ctx := context.Background()

	remaining, err := h.attemptService.SyncTime(ctx, userID, classID, service.DefaultExamType, msg.Remaining, meta)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotStarted) {
			ws.WriteError(conn, "no attempt in progress")
			return
		}
		wsLog.Error().Err(err).Msg("Time sync error")
		ws.WriteError(conn, "time sync failed")
		return
	}

	ws.WriteJSON(conn, ws.EventTime, map[string]int{"time_remaining": remaining})
}

func (h *WSHandler) handleSubmit(conn *websocket.Conn, wsLog zerolog.Logger, userID int, classID *int, meta service.ClientMeta) {
	ctx := context.Background()

	outcome, err := h.attemptService.Submit(ctx, userID, classID, service.DefaultExamType, meta)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotStarted) {
			ws.WriteError(conn, "no attempt in progress")
			return
		}
		wsLog.Error().Err(err).Msg("Submit error")
		ws.WriteError(conn, "submit failed")
		return
	}

	wsLog.Info().Int("score", outcome.Score).Bool("passed", outcome.Passed).Msg("Exam submitted and graded")

	ws.WriteJSON(conn, ws.EventGraded, outcome)
}
