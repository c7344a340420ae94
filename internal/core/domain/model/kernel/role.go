package kernel

import (
	"fmt"
	"strings"

	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation. Roles are
// established by the identity collaborator (a verified token), never taken
// from request payloads.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleRider    Role = "rider"
	RoleAdmin    Role = "admin"
)

// RoleFromString parses a role from its string representation,
// ignoring case and surrounding whitespace.
func RoleFromString(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks that the role is one of the enumerated actor kinds.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRider, RoleAdmin:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", string(r)))
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
