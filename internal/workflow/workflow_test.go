package workflow_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/legaltech-workflows/internal/auth"
	"github.com/frahmantamala/legaltech-workflows/internal/user"
	"github.com/frahmantamala/legaltech-workflows/internal/workflow"
)

func TestWorkflow(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Workflow Suite")
}

var _ = Describe("Workflows", func() {
	It("should register the seven feature areas with unique slugs", func() {
		all := workflow.All()
		Expect(all).To(HaveLen(7))

		seen := map[string]bool{}
		for _, wf := range all {
			Expect(seen[wf.Slug]).To(BeFalse(), "duplicate slug %s", wf.Slug)
			seen[wf.Slug] = true
		}
	})

	Describe("ForRole", func() {
		It("should include every workflow for legal", func() {
			role, _ := auth.RoleFor(user.RoleLegal)
			Expect(workflow.ForRole(role)).To(HaveLen(7))
		})

		It("should narrow the grid for business", func() {
			role, _ := auth.RoleFor(user.RoleBusiness)
			visible := workflow.ForRole(role)
			Expect(visible).To(HaveLen(3))

			keys := make([]string, len(visible))
			for i, wf := range visible {
				keys[i] = wf.Key
			}
			Expect(keys).To(ConsistOf("contract_qa", "knowledge_base", "upload"))
		})
	})
})
