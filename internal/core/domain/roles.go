package domain

import (
	"fmt"
	"strings"
)

// Role is the authorization role of an authenticated actor.
type Role string

const (
	RoleMaker          Role = "MAKER"
	RoleChecker        Role = "CHECKER"
	RoleApprover       Role = "APPROVER"
	RoleFinanceManager Role = "FINANCE_MANAGER"
	RoleAdmin          Role = "ADMIN"
)

var allRoles = []Role{RoleMaker, RoleChecker, RoleApprover, RoleFinanceManager, RoleAdmin}

// ParseRole converts a role claim into a Role.
func ParseRole(s string) (Role, error) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range allRoles {
		if r == candidate {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Actor is the authenticated caller threaded through every workflow call.
type Actor struct {
	ID   string
	Role Role
}
