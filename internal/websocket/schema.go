package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionSaveAnswer Action = "save_answer"
	ActionFlag       Action = "flag_question"
	ActionSaveTime   Action = "save_time"
	ActionSubmit     Action = "submit_exam"
	ActionPing       Action = "ping"
)

// RequestPayload is the single client message shape; fields beyond Action
// are populated depending on the action.
type RequestPayload struct {
	Action   Action `json:"action"`
	Question int    `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Remaining int   `json:"remaining,omitempty"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError   Event = "error"
	EventSuccess Event = "success"
	EventTime    Event = "time"
	EventGraded  Event = "graded"
	EventPong    Event = "pong"
)

// ResponseEnvelope wraps every server message.
type ResponseEnvelope struct {
	Event Event       `json:"event"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}
