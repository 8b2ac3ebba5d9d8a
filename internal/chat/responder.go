package chat

import (
	"math/rand"
	"sync"
	"time"
)

// Responder produces the assistant reply for a workflow. The demo ships a
// canned-pool implementation; a real model integration can replace it
// without touching the request-handling contract.
type Responder interface {
	Reply(workflow, message string) string
}

// PooledResponder picks a reply at random from a fixed per-workflow pool,
// falling back to a generic pool for unrecognized workflows. The incoming
// message is ignored on purpose; no understanding is simulated beyond the
// workflow tag.
type PooledResponder struct {
	pools    map[string][]string
	defaults []string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewPooledResponder() *PooledResponder {
	return NewPooledResponderWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewPooledResponderWithSource allows a deterministic source for tests.
func NewPooledResponderWithSource(src rand.Source) *PooledResponder {
	return &PooledResponder{
		pools: map[string][]string{
			WorkflowContractQA: {
				"Based on the executed agreement for Supplier X, the termination clause requires 90 days written notice. This is located in Section 12.3 of the document.",
				"The payment terms specify net 30 days from invoice date, with a 2% discount for payments within 10 days.",
				"According to the agreement, the exclusivity period extends for 5 years from the effective date, covering the specified territories.",
			},
			WorkflowAgreementReplication: {
				"I've analyzed the negotiated terms and identified key differences for New York state requirements. The notice period needs to be extended to 60 days.",
				"California requires specific franchise law disclosures that aren't in the base template. I've added the necessary clauses.",
				"The territory definition for Florida needs to exclude certain counties due to local distribution laws.",
			},
			WorkflowFinancialAnalysis: {
				"I've extracted the financial obligations from the agreement. Total annual commitment is $2.4M across quarterly payments.",
				"The marketing fund requirement is 3% of net sales, payable quarterly, with a minimum annual commitment of $50K.",
				"Payment terms analysis shows 70% of obligations are due within 30 days, 25% within 60 days, and 5% within 90 days.",
			},
		},
		defaults: []string{
			"I've processed your request and analyzed the relevant documents.",
			"Based on the agreement analysis, here are the key findings:",
			"The system has identified the following relevant information:",
		},
		rng: rand.New(src),
	}
}

func (p *PooledResponder) Reply(workflow, _ string) string {
	pool, ok := p.pools[workflow]
	if !ok {
		pool = p.defaults
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return pool[p.rng.Intn(len(pool))]
}
