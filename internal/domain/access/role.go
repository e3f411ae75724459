// Package access decides who may read, author or transition the
// marketplace's sensitive resources. Decisions are plain values: nothing in
// this package returns an error, mutates state or caches anything.
package access

import (
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser          Role = "user"
	RoleCosmetologist Role = "cosmetologist"
	RoleAdmin         Role = "admin"
	RoleSuperadmin    Role = "superadmin"
)

// Roles lists every role the system knows about.
var Roles = []Role{RoleUser, RoleCosmetologist, RoleAdmin, RoleSuperadmin}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCosmetologist, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated requester as resolved from the session.
type Principal struct {
	ID   uuid.UUID
	Role Role
}
