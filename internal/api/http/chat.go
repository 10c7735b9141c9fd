package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/biovozrast/bioage-bot/internal/quiz"
)

// chatMessage mirrors quiz.Outbound on the wire. The page renders bubbles and
// buttons from it and may honor delay_ms for typing pacing.
type chatMessage struct {
	Body          string   `json:"body"`
	Options       []string `json:"options,omitempty"`
	ClearKeyboard bool     `json:"clear_keyboard,omitempty"`
	DelayMS       int64    `json:"delay_ms,omitempty"`
}

// NewChatSessionHandler hands a fresh anonymous identity to the browser.
// POST /api/chat/session
func NewChatSessionHandler(a *AuthService) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"user_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uid := "web|" + uuid.NewString()
		tok, err := a.Issue(uid)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, UserID: uid})
	}
}

// ChatMessageHandler feeds one user message through the engine and returns the
// bot's replies in order.
// POST /api/chat/message  { "text": "..." }
func ChatMessageHandler(engine *quiz.Engine) http.HandlerFunc {
	type out struct {
		Messages []chatMessage `json:"messages"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uid := UserID(r.Context())
		if uid == "" {
			http.Error(w, "no identity", http.StatusUnauthorized)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		text := strings.TrimSpace(req.Text)
		if text == "" {
			http.Error(w, "text required", http.StatusBadRequest)
			return
		}

		resp := out{Messages: []chatMessage{}}
		for _, o := range engine.Handle(normalizeEvent(uid, text)) {
			resp.Messages = append(resp.Messages, chatMessage{
				Body:          o.Body,
				Options:       o.Options,
				ClearKeyboard: o.Clear,
				DelayMS:       o.Delay.Milliseconds(),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// normalizeEvent maps slash commands to engine commands; everything else is
// free text. Unknown slash commands stay text, matching the Telegram side.
func normalizeEvent(uid, text string) quiz.Event {
	switch text {
	case "/" + quiz.CmdStart:
		return quiz.Command{UserID: uid, Name: quiz.CmdStart}
	case "/" + quiz.CmdTest:
		return quiz.Command{UserID: uid, Name: quiz.CmdTest}
	case "/" + quiz.CmdHelp:
		return quiz.Command{UserID: uid, Name: quiz.CmdHelp}
	}
	return quiz.Text{UserID: uid, Content: text}
}
