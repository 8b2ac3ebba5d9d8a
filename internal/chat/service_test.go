package chat_test

import (
	"log/slog"
	"math/rand"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/legaltech-workflows/internal"
	"github.com/frahmantamala/legaltech-workflows/internal/chat"
	"github.com/frahmantamala/legaltech-workflows/internal/session"
)

func TestChatService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Chat Service Suite")
}

// echoResponder makes replies predictable for assertions on message flow.
type echoResponder struct{}

func (echoResponder) Reply(workflow, _ string) string {
	return "reply for " + workflow
}

func newBrowserSession() *session.Session {
	store := session.NewStore(internal.SessionConfig{
		CookieName:      "legaltech_session",
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	})
	return store.Ensure(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}

var _ = Describe("Chat Service", func() {
	var (
		service *chat.Service
		sess    *session.Session
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = chat.NewService(echoResponder{}, logger)
		sess = newBrowserSession()
	})

	Describe("StartSession", func() {
		It("should nest a fresh chat session in the browser session", func() {
			sess.UserID = "2"
			sess.CategoryID = "wine"

			resp := service.StartSession(sess, chat.WorkflowContractQA)
			Expect(resp.SessionID).NotTo(BeEmpty())
			Expect(resp.Message).To(Equal("Started contract_qa session for wine"))

			chatSess, ok := sess.CurrentChat()
			Expect(ok).To(BeTrue())
			Expect(chatSess.ID).To(Equal(resp.SessionID))
			Expect(chatSess.UserID).To(Equal("2"))
			Expect(chatSess.Workflow).To(Equal(chat.WorkflowContractQA))
			Expect(chatSess.ProductCategory).To(Equal("wine"))
			Expect(chatSess.Status).To(Equal(session.ChatStatusActive))
			Expect(chatSess.Messages).To(BeEmpty())
		})

		It("should fall back to placeholders before login and category selection", func() {
			resp := service.StartSession(sess, "")
			Expect(resp.Message).To(Equal("Started workflow session for product"))

			chatSess, ok := sess.CurrentChat()
			Expect(ok).To(BeTrue())
			Expect(chatSess.UserID).To(Equal("1"))
		})

		It("should replace any previous chat session", func() {
			first := service.StartSession(sess, chat.WorkflowContractQA)
			second := service.StartSession(sess, chat.WorkflowFinancialAnalysis)
			Expect(second.SessionID).NotTo(Equal(first.SessionID))

			chatSess, _ := sess.CurrentChat()
			Expect(chatSess.ID).To(Equal(second.SessionID))
			Expect(chatSess.Workflow).To(Equal(chat.WorkflowFinancialAnalysis))
		})
	})

	Describe("SendMessage", func() {
		Context("without an active chat session", func() {
			It("should fail", func() {
				_, err := service.SendMessage(sess, "hello")
				Expect(err).To(MatchError(internal.ErrNoActiveSession))
			})
		})

		Context("for contract Q&A", func() {
			BeforeEach(func() {
				service.StartSession(sess, chat.WorkflowContractQA)
			})

			It("should answer with the fixed citations", func() {
				resp, err := service.SendMessage(sess, "what are the payment terms?")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.AIMessage).To(Equal("reply for contract_qa"))
				Expect(resp.Citations).To(Equal([]string{"Section 4.2", "Page 15", "Clause 8.1"}))
			})

			It("should append the user turn then the assistant turn", func() {
				_, err := service.SendMessage(sess, "first question")
				Expect(err).NotTo(HaveOccurred())
				_, err = service.SendMessage(sess, "second question")
				Expect(err).NotTo(HaveOccurred())

				chatSess, _ := sess.CurrentChat()
				Expect(chatSess.Messages).To(HaveLen(4))
				Expect(chatSess.Messages[0].Role).To(Equal(session.MessageRoleUser))
				Expect(chatSess.Messages[0].Content).To(Equal("first question"))
				Expect(chatSess.Messages[1].Role).To(Equal(session.MessageRoleAI))
				Expect(chatSess.Messages[2].Content).To(Equal("second question"))
				Expect(chatSess.Messages[3].Role).To(Equal(session.MessageRoleAI))
			})
		})

		Context("for other workflows", func() {
			It("should answer with an empty citation list", func() {
				service.StartSession(sess, chat.WorkflowFinancialAnalysis)

				resp, err := service.SendMessage(sess, "extract the obligations")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Citations).NotTo(BeNil())
				Expect(resp.Citations).To(BeEmpty())
			})
		})
	})
})

var _ = Describe("PooledResponder", func() {
	It("should draw from the workflow's pool", func() {
		responder := chat.NewPooledResponderWithSource(rand.NewSource(1))
		reply := responder.Reply(chat.WorkflowContractQA, "anything")
		Expect(reply).To(BeElementOf(
			"Based on the executed agreement for Supplier X, the termination clause requires 90 days written notice. This is located in Section 12.3 of the document.",
			"The payment terms specify net 30 days from invoice date, with a 2% discount for payments within 10 days.",
			"According to the agreement, the exclusivity period extends for 5 years from the effective date, covering the specified territories.",
		))
	})

	It("should fall back to the default pool for unknown workflows", func() {
		responder := chat.NewPooledResponderWithSource(rand.NewSource(1))
		reply := responder.Reply("term_sheet", "anything")
		Expect(reply).To(BeElementOf(
			"I've processed your request and analyzed the relevant documents.",
			"Based on the agreement analysis, here are the key findings:",
			"The system has identified the following relevant information:",
		))
	})

	It("should be deterministic for a fixed source", func() {
		a := chat.NewPooledResponderWithSource(rand.NewSource(7))
		b := chat.NewPooledResponderWithSource(rand.NewSource(7))
		for i := 0; i < 10; i++ {
			Expect(a.Reply(chat.WorkflowFinancialAnalysis, "m")).To(
				Equal(b.Reply(chat.WorkflowFinancialAnalysis, "m")))
		}
	})
})
