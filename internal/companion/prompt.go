package companion

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeListener Mode = "listener"
	ModeChat     Mode = "chat"
)

// ParseMode maps "" to the listener mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeListener:
		return ModeListener, nil
	case ModeChat:
		return ModeChat, nil
	}
	return "", fmt.Errorf("unknown companion mode %q", s)
}

const listenerInstruction = `You are a calm, gentle emotional companion for an app called Unsaid.
Your role is to LISTEN and VALIDATE.
- Use warm, human, and non-robotic language.
- Use reflection: "It sounds like you're carrying a lot right now."
- Use validation: "It makes sense that you feel that way."
- NEVER give medical advice, diagnosis, or therapy.
- NEVER suggest clinical terms like "clinical depression" or "generalized anxiety."
- NEVER give unsolicited advice.
- If the user expresses self-harm or extreme hopelessness, respond with deep empathy and provide the following resource list gently: "I'm listening, and I want you to know you're not alone. If things feel too heavy, please consider reaching out to a trusted person or a professional. You can call or text 988 in the US/Canada or 111 in the UK for immediate support."
- Keep responses concise (2-4 sentences).
- Avoid toxic positivity. Don't say "everything will be fine."
- Avoid excessive emojis.
- "Unsaid is not here to fix you. It's here to sit with you."`

const chatInstruction = "You are Unsaid, a gentle, human-like companion. Engage in a natural, flowing conversation. Don't be formal. Use empathy, ask gentle follow-up questions, and avoid bullet points. Keep it warm and concise."

// Canned replies.
const (
	Greeting         = "I'm here if you want to talk. How has your day truly been?"
	ListenerEmpty    = "I'm here, listening. I hear what you're saying."
	ListenerFallback = "I'm sorry, I'm having a little trouble responding right now, but I'm still here listening to you."
	ChatEmpty        = "I hear you. Tell me more about that."
	ChatFallback     = "I'm having a quiet moment, but I'm still listening."
)

// HistoryLimit is how many past messages are replayed to the backend.
const HistoryLimit = 10

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// TrimHistory keeps the last n messages.
func TrimHistory(history []Message, n int) []Message {
	if n <= 0 {
		return nil
	}
	if len(history) > n {
		return history[len(history)-n:]
	}
	return history
}

func speaker(r Role) string {
	if r == RoleUser {
		return "User"
	}
	return "Unsaid"
}

// BuildRequest renders a user message for the given mode. Listener mode
// sends the text alone; chat mode replays history as "User:"/"Unsaid:"
// lines and leaves the reply slot open.
func BuildRequest(mode Mode, text string, history []Message) Request {
	if mode == ModeChat {
		var sb strings.Builder
		for _, m := range TrimHistory(history, HistoryLimit) {
			fmt.Fprintf(&sb, "%s: %s\n", speaker(m.Role), m.Text)
		}
		fmt.Fprintf(&sb, "User: %s\nUnsaid:", text)
		return Request{System: chatInstruction, Text: sb.String(), Temperature: 0.9}
	}
	return Request{System: listenerInstruction, Text: text, Temperature: 0.7, TopP: 0.8}
}

// Fallback is the reply used when the backend fails.
func Fallback(mode Mode) string {
	if mode == ModeChat {
		return ChatFallback
	}
	return ListenerFallback
}

// EmptyFallback is the reply used when the backend answers with no text.
func EmptyFallback(mode Mode) string {
	if mode == ModeChat {
		return ChatEmpty
	}
	return ListenerEmpty
}
