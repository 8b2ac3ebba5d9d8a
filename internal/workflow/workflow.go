package workflow

import (
	"github.com/frahmantamala/legaltech-workflows/internal/auth"
)

// Workflow describes one gated feature area: its URL slug, the template
// that renders it, the chat workflow tag and the permission its view
// requires.
type Workflow struct {
	Key         string          `json:"key"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Page        string          `json:"-"`
	Permission  auth.Permission `json:"permission"`
}

var workflows = []Workflow{
	{
		Key:         "agreement_replication",
		Slug:        "agreement-replication",
		Title:       "Agreement Replication",
		Description: "Replicate an executed agreement for additional states.",
		Page:        "agreement_replication.html",
		Permission:  auth.PermAgreementReplication,
	},
	{
		Key:         "create_agreement",
		Slug:        "create-agreement",
		Title:       "Create Agreement",
		Description: "Draft a new distribution agreement with assistant support.",
		Page:        "create_agreement.html",
		Permission:  auth.PermCreateAgreement,
	},
	{
		Key:         "contract_qa",
		Slug:        "contract-qa",
		Title:       "Contract Q&A",
		Description: "Ask questions about executed agreements.",
		Page:        "contract_qa.html",
		Permission:  auth.PermContractQA,
	},
	{
		Key:         "term_sheet",
		Slug:        "term-sheet",
		Title:       "Term Sheet",
		Description: "Generate term sheet summaries.",
		Page:        "term_sheet.html",
		Permission:  auth.PermTermSheet,
	},
	{
		Key:         "financial_analysis",
		Slug:        "financial-analysis",
		Title:       "Financial Analysis",
		Description: "Extract financial obligations from agreements.",
		Page:        "financial_analysis.html",
		Permission:  auth.PermFinancialAnalysis,
	},
	{
		Key:         "knowledge_base",
		Slug:        "knowledge-base",
		Title:       "Knowledge Base",
		Description: "Browse distribution-law reference material.",
		Page:        "knowledge_base.html",
		Permission:  auth.PermKnowledgeBase,
	},
	{
		Key:         "upload",
		Slug:        "upload",
		Title:       "Upload Documents",
		Description: "Add executed agreements to the document store.",
		Page:        "upload.html",
		Permission:  auth.PermUpload,
	},
}

// All returns the fixed workflow list.
func All() []Workflow {
	return append([]Workflow(nil), workflows...)
}

// ForRole returns the workflows a role's permissions allow, for the
// dashboard grid.
func ForRole(role auth.Role) []Workflow {
	var out []Workflow
	for _, wf := range workflows {
		if role.Has(wf.Permission) {
			out = append(out, wf)
		}
	}
	return out
}
