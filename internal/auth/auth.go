package auth

import (
	"github.com/frahmantamala/legaltech-workflows/internal/user"
)

// Permission enumerates every workflow capability a role can grant. Checks
// go through set containment so the authorization model stays exhaustive
// and reviewable.
type Permission string

const (
	PermAgreementReplication Permission = "agreement_replication"
	PermCreateAgreement      Permission = "create_agreement"
	PermContractQA           Permission = "contract_qa"
	PermTermSheet            Permission = "term_sheet"
	PermFinancialAnalysis    Permission = "financial_analysis"
	PermKnowledgeBase        Permission = "knowledge_base"
	PermUpload               Permission = "upload"
)

type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Role bundles a fixed permission set with display metadata. Permissions
// keeps declaration order for rendering; the set backs containment checks.
type Role struct {
	Name        user.RoleName `json:"name"`
	DisplayName string        `json:"display_name"`
	Description string        `json:"description"`
	Permissions []Permission  `json:"permissions"`

	set PermissionSet
}

func (r Role) Has(p Permission) bool {
	return r.set.Has(p)
}

func newRole(name user.RoleName, displayName, description string, perms ...Permission) Role {
	return Role{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Permissions: perms,
		set:         NewPermissionSet(perms...),
	}
}

var roles = []Role{
	newRole(user.RoleLegal, "Legal", "Full access to all legal tech workflows",
		PermAgreementReplication, PermCreateAgreement, PermContractQA,
		PermTermSheet, PermFinancialAnalysis, PermKnowledgeBase, PermUpload),
	newRole(user.RoleFinance, "Finance", "Financial analysis and contract review access",
		PermFinancialAnalysis, PermContractQA, PermKnowledgeBase, PermUpload),
	newRole(user.RoleBusiness, "Business", "Contract Q&A and knowledge base access",
		PermContractQA, PermKnowledgeBase, PermUpload),
}

// RoleFor resolves the fixed role definition for a user's role name.
func RoleFor(name user.RoleName) (Role, bool) {
	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}

// Roles returns the fixed role list.
func Roles() []Role {
	return append([]Role(nil), roles...)
}
