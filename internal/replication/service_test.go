package replication_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/legaltech-workflows/internal"
	"github.com/frahmantamala/legaltech-workflows/internal/replication"
)

func TestReplicationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Replication Service Suite")
}

func newService(delay time.Duration) *replication.Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return replication.NewService(internal.ReplicationConfig{ProcessingDelay: delay}, logger)
}

func validRequest() replication.Request {
	return replication.Request{
		Filename:     "distribution_agreement.pdf",
		TargetStates: []string{"NY", "CA"},
		OriginState:  "TX",
		CategoryName: "Wine",
	}
}

var _ = Describe("Replication Service", func() {
	var service *replication.Service

	BeforeEach(func() {
		service = newService(0)
	})

	Describe("validation", func() {
		It("should require a filename", func() {
			req := validRequest()
			req.Filename = ""
			_, err := service.Replicate(context.Background(), req)
			Expect(err).To(MatchError(internal.ErrNoFileSelected))
		})

		It("should require at least one target state", func() {
			req := validRequest()
			req.TargetStates = nil
			_, err := service.Replicate(context.Background(), req)
			Expect(err).To(MatchError(internal.ErrNoStatesSelected))
		})

		It("should require an origin state", func() {
			req := validRequest()
			req.OriginState = ""
			_, err := service.Replicate(context.Background(), req)
			Expect(err).To(MatchError(internal.ErrNoOriginState))
		})

		It("should reject the origin among the targets", func() {
			req := validRequest()
			req.TargetStates = []string{"NY", "TX"}
			_, err := service.Replicate(context.Background(), req)
			Expect(err).To(MatchError(internal.ErrOriginInTargets))
		})
	})

	Describe("Replicate", func() {
		It("should produce one completed result per mapped state", func() {
			resp, err := service.Replicate(context.Background(), validRequest())
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.Success).To(BeTrue())
			Expect(resp.Message).To(Equal("Successfully replicated agreement for 2 state(s)"))
			Expect(resp.OriginalFilename).To(Equal("distribution_agreement.pdf"))
			Expect(resp.ProductCategory).To(Equal("Wine"))

			Expect(resp.Results).To(HaveLen(2))
			Expect(resp.Results[0].State).To(Equal("NY"))
			Expect(resp.Results[0].StateName).To(Equal("New York"))
			Expect(resp.Results[1].State).To(Equal("CA"))
			Expect(resp.Results[1].StateName).To(Equal("California"))

			for _, res := range resp.Results {
				Expect(res.Status).To(Equal("completed"))
				Expect(res.AgreementID).NotTo(BeEmpty())
				Expect(res.Modifications).To(HaveLen(3))
				Expect(res.DownloadURL).To(Equal("/api/download-replicated-agreement/" + res.State))
			}
			Expect(resp.Results[0].AgreementID).NotTo(Equal(resp.Results[1].AgreementID))
		})

		It("should drop states without a display name while still counting them in the message", func() {
			req := validRequest()
			req.TargetStates = []string{"WA", "FL", "OR"}

			resp, err := service.Replicate(context.Background(), req)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.Results).To(HaveLen(1))
			Expect(resp.Results[0].State).To(Equal("FL"))
			Expect(resp.Results[0].StateName).To(Equal("Florida"))
			Expect(resp.Message).To(Equal("Successfully replicated agreement for 3 state(s)"))
		})

		It("should succeed with no results when no target state is mapped", func() {
			req := validRequest()
			req.TargetStates = []string{"WA", "OR"}

			resp, err := service.Replicate(context.Background(), req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Results).To(BeEmpty())
		})

		It("should honor the configured processing delay", func() {
			delayed := newService(50 * time.Millisecond)

			start := time.Now()
			_, err := delayed.Replicate(context.Background(), validRequest())
			Expect(err).NotTo(HaveOccurred())
			Expect(time.Since(start)).To(BeNumerically(">=", 50*time.Millisecond))
		})

		It("should abort when the context is canceled during the delay", func() {
			delayed := newService(5 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()

			_, err := delayed.Replicate(ctx, validRequest())
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	Describe("Document", func() {
		It("should synthesize the plain-text agreement for the state", func() {
			body := service.Document("NY")
			Expect(body).To(ContainSubstring("DISTRIBUTION AGREEMENT - NY VERSION"))
			Expect(body).To(ContainSubstring("This is a mock replicated agreement for NY."))
			Expect(body).To(ContainSubstring("Added state-specific termination requirements"))
			Expect(body).To(ContainSubstring("Generated on: "))
		})
	})
})

var _ = Describe("StateCodes", func() {
	It("should list all fifty states", func() {
		Expect(replication.StateCodes()).To(HaveLen(50))
		Expect(replication.StateCodes()).To(ContainElements("CA", "NY", "TX", "FL", "WY"))
	})
})
