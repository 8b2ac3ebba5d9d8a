package session

import (
	"sync"
	"time"
)

// Flash is a one-shot message surfaced to the user on the next rendered
// view, in the categories the templates understand.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Message is a single turn in a chat transcript.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	MessageRoleUser = "user"
	MessageRoleAI   = "ai"
)

// ChatSession is the ephemeral assistant conversation nested inside a
// browser session. The message log is append-only, ordered by arrival.
type ChatSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Workflow        string    `json:"workflow"`
	ProductCategory string    `json:"product_category"`
	Messages        []Message `json:"messages"`
	CreatedAt       time.Time `json:"created_at"`
	Status          string    `json:"status"`
}

const ChatStatusActive = "active"

// Session is the server-side state for one browser. Fields are explicit
// rather than an untyped bag so callers can see exactly what a session may
// hold: an optional authenticated user, an optional product category and an
// optional current chat session.
type Session struct {
	mu sync.Mutex

	ID         string
	UserID     string
	CategoryID string
	Chat       *ChatSession
	flashes    []Flash
	CreatedAt  time.Time
}

func (s *Session) Authenticated() bool {
	return s.UserID != ""
}

func (s *Session) HasCategory() bool {
	return s.CategoryID != ""
}

// StartChat replaces any current chat session with a fresh one.
func (s *Session) StartChat(chat *ChatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Chat = chat
}

// AppendChatMessage appends one turn to the current chat session and
// reports whether a chat session existed.
func (s *Session) AppendChatMessage(role, content string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Chat == nil {
		return false
	}
	s.Chat.Messages = append(s.Chat.Messages, Message{Role: role, Content: content, Timestamp: at})
	return true
}

// CurrentChat returns the nested chat session, if any.
func (s *Session) CurrentChat() (*ChatSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Chat == nil {
		return nil, false
	}
	return s.Chat, true
}

// AddFlash queues a one-shot message for the next rendered view.
func (s *Session) AddFlash(category, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, Flash{Category: category, Message: message})
}

// PopFlashes drains and returns the queued flash messages.
func (s *Session) PopFlashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}
