package chat

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/legaltech-workflows/internal"
	"github.com/frahmantamala/legaltech-workflows/internal/session"
)

// Workflow tags the chat API recognizes. Anything else falls back to the
// default response pool.
const (
	WorkflowContractQA           = "contract_qa"
	WorkflowAgreementReplication = "agreement_replication"
	WorkflowFinancialAnalysis    = "financial_analysis"
)

// contractQACitations is the fixed citation list returned for contract Q&A
// replies only.
var contractQACitations = []string{"Section 4.2", "Page 15", "Clause 8.1"}

// fallbackUserID is attached to chat sessions started before login; the
// chat API is deliberately open, matching the demo's behavior.
const fallbackUserID = "1"

type Service struct {
	responder Responder
	logger    *slog.Logger
}

func NewService(responder Responder, logger *slog.Logger) *Service {
	return &Service{
		responder: responder,
		logger:    logger,
	}
}

// StartSession nests a fresh chat session in the browser session, seeded
// with the session's user and category, and returns the acknowledgement.
func (s *Service) StartSession(sess *session.Session, workflow string) StartSessionResponse {
	userID := sess.UserID
	if userID == "" {
		userID = fallbackUserID
	}

	chatSess := &session.ChatSession{
		ID:              uuid.NewString(),
		UserID:          userID,
		Workflow:        workflow,
		ProductCategory: sess.CategoryID,
		Messages:        []session.Message{},
		CreatedAt:       time.Now(),
		Status:          session.ChatStatusActive,
	}
	sess.StartChat(chatSess)

	workflowLabel := workflow
	if workflowLabel == "" {
		workflowLabel = "workflow"
	}
	categoryLabel := sess.CategoryID
	if categoryLabel == "" {
		categoryLabel = "product"
	}

	s.logger.Info("chat session started", "chat_session_id", chatSess.ID, "workflow", workflow, "user_id", userID)

	return StartSessionResponse{
		SessionID: chatSess.ID,
		Message:   fmt.Sprintf("Started %s session for %s", workflowLabel, categoryLabel),
	}
}

// SendMessage appends the user's message to the current chat session,
// produces the canned reply and appends it as the assistant turn. It fails
// when the browser session has no chat session.
func (s *Service) SendMessage(sess *session.Session, message string) (SendMessageResponse, error) {
	chatSess, ok := sess.CurrentChat()
	if !ok {
		return SendMessageResponse{}, internal.ErrNoActiveSession
	}

	sess.AppendChatMessage(session.MessageRoleUser, message, time.Now())

	reply := s.responder.Reply(chatSess.Workflow, message)
	sess.AppendChatMessage(session.MessageRoleAI, reply, time.Now())

	citations := []string{}
	if chatSess.Workflow == WorkflowContractQA {
		citations = append(citations, contractQACitations...)
	}

	return SendMessageResponse{
		AIMessage: reply,
		Citations: citations,
	}, nil
}
