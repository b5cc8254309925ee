package services

import (
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// Policy maps roles to the permissions they grant. It is built once at
// startup and passed to the services that authorize callers.
type Policy struct {
	grants       map[domain.Role]map[domain.Permission]struct{}
	roleManagers map[domain.Role]struct{}
}

// NewPolicy builds a policy. roleManagers are the roles allowed to change other users' roles.
func NewPolicy(grants map[domain.Role][]domain.Permission, roleManagers ...domain.Role) Policy {
	p := Policy{
		grants:       make(map[domain.Role]map[domain.Permission]struct{}, len(grants)),
		roleManagers: make(map[domain.Role]struct{}, len(roleManagers)),
	}
	for role, perms := range grants {
		set := make(map[domain.Permission]struct{}, len(perms))
		for _, perm := range perms {
			set[perm] = struct{}{}
		}
		p.grants[role] = set
	}
	for _, role := range roleManagers {
		p.roleManagers[role] = struct{}{}
	}
	return p
}

// DefaultPolicy returns the standard role table.
func DefaultPolicy() Policy {
	return NewPolicy(map[domain.Role][]domain.Permission{
		domain.RoleAdmin:    {domain.PermAll},
		domain.RoleContador: {domain.PermRead, domain.PermCreate, domain.PermUpdate, domain.PermApprove, domain.PermReports},
		domain.RoleAuxiliar: {domain.PermRead, domain.PermCreate},
		domain.RoleGerente:  {domain.PermRead, domain.PermReports, domain.PermApprove},
		domain.RoleViewer:   {domain.PermRead},
	}, domain.RoleAdmin)
}

// HasPermission reports whether role grants perm. The "*" grant covers everything.
func (p Policy) HasPermission(role domain.Role, perm domain.Permission) bool {
	set, ok := p.grants[role]
	if !ok {
		return false
	}
	if _, all := set[domain.PermAll]; all {
		return true
	}
	_, ok = set[perm]
	return ok
}

// CanChangeRoles reports whether role may assign roles to users.
func (p Policy) CanChangeRoles(role domain.Role) bool {
	_, ok := p.roleManagers[role]
	return ok
}

// Permissions lists the grants of role in a stable order.
func (p Policy) Permissions(role domain.Role) []domain.Permission {
	perms := make([]domain.Permission, 0, len(p.grants[role]))
	for perm := range p.grants[role] {
		perms = append(perms, perm)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}
