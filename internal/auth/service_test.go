package auth_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/legaltech-workflows/internal"
	"github.com/frahmantamala/legaltech-workflows/internal/auth"
	"github.com/frahmantamala/legaltech-workflows/internal/user"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

var _ = Describe("Auth Service", func() {
	var service *auth.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(user.NewService(user.NewDirectory(), logger), logger)
	})

	Describe("AuthenticateEmail", func() {
		Context("when the email belongs to a demo identity", func() {
			It("should return the user", func() {
				u, err := service.AuthenticateEmail(auth.LoginDTO{Email: "jennifer.smith@bbg.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(u.ID).To(Equal("3"))
				Expect(u.Role).To(Equal(user.RoleBusiness))
			})
		})

		Context("when the email is unknown", func() {
			It("should fail with an invalid email error", func() {
				_, err := service.AuthenticateEmail(auth.LoginDTO{Email: "intruder@bbg.com"})
				Expect(err).To(MatchError(internal.ErrInvalidEmail))
			})
		})

		Context("when the email is empty", func() {
			It("should fail validation", func() {
				_, err := service.AuthenticateEmail(auth.LoginDTO{})
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("CurrentUser", func() {
		It("should fail for an empty user id", func() {
			_, err := service.CurrentUser("")
			Expect(err).To(MatchError(internal.ErrNotAuthenticated))
		})

		It("should fail for a stale user id", func() {
			_, err := service.CurrentUser("99")
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Roles", func() {
	It("should define all three roles", func() {
		Expect(auth.Roles()).To(HaveLen(3))
	})

	It("should give legal every workflow permission", func() {
		role, ok := auth.RoleFor(user.RoleLegal)
		Expect(ok).To(BeTrue())
		for _, p := range []auth.Permission{
			auth.PermAgreementReplication,
			auth.PermCreateAgreement,
			auth.PermContractQA,
			auth.PermTermSheet,
			auth.PermFinancialAnalysis,
			auth.PermKnowledgeBase,
			auth.PermUpload,
		} {
			Expect(role.Has(p)).To(BeTrue(), "legal should hold %s", p)
		}
	})

	It("should withhold legal-only workflows from finance", func() {
		role, ok := auth.RoleFor(user.RoleFinance)
		Expect(ok).To(BeTrue())
		Expect(role.Has(auth.PermFinancialAnalysis)).To(BeTrue())
		Expect(role.Has(auth.PermContractQA)).To(BeTrue())
		Expect(role.Has(auth.PermAgreementReplication)).To(BeFalse())
		Expect(role.Has(auth.PermCreateAgreement)).To(BeFalse())
		Expect(role.Has(auth.PermTermSheet)).To(BeFalse())
	})

	It("should limit business to Q&A, knowledge base and upload", func() {
		role, ok := auth.RoleFor(user.RoleBusiness)
		Expect(ok).To(BeTrue())
		Expect(role.Permissions).To(ConsistOf(
			auth.PermContractQA, auth.PermKnowledgeBase, auth.PermUpload))
		Expect(role.Has(auth.PermFinancialAnalysis)).To(BeFalse())
	})

	It("should not resolve unknown role names", func() {
		_, ok := auth.RoleFor(user.RoleName("admin"))
		Expect(ok).To(BeFalse())
	})
})
