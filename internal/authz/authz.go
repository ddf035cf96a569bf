package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/sirupsen/logrus"
)

// Actions
const (
	ActionShowcaseCreate           = "showcase_create"
	ActionShowcaseUpdate           = "showcase_update"
	ActionShowcaseDelete           = "showcase_delete"
	ActionShowcaseShow             = "showcase_show"
	ActionShowcaseList             = "showcase_list"
	ActionShowcaseFiltered         = "showcase_filtered"
	ActionShowcaseStatistics       = "showcase_statistics"
	ActionShowcaseUpload           = "showcase_upload"
	ActionStatusShow               = "status_show"
	ActionStatusUpdate             = "status_update"
	ActionPackageAssociationCreate = "package_association_create"
	ActionPackageAssociationDelete = "package_association_delete"
	ActionShowcasePackageList      = "showcase_package_list"
	ActionPackageShowcaseList      = "package_showcase_list"
	ActionAdminAdd                 = "admin_add"
	ActionAdminRemove              = "admin_remove"
	ActionAdminList                = "admin_list"
)

// Object classes. Visibility of a showcase depends on whether it has been approved.
const (
	ObjectApproved   = "approved"
	ObjectUnapproved = "unapproved"
	ObjectAny        = "*"
)

// Roles, from least to most privileged
const (
	RoleAnonymous     = "anonymous"
	RoleAuthenticated = "authenticated"
	RoleCreator       = "creator"
	RolePortalAdmin   = "portal_admin"
	RoleSysadmin      = "sysadmin"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && r.act == p.act
`

var policies = [][]string{
	{RoleAnonymous, ObjectAny, ActionShowcaseList},
	{RoleAnonymous, ObjectAny, ActionPackageShowcaseList},
	{RoleAnonymous, ObjectApproved, ActionShowcaseShow},
	{RoleAnonymous, ObjectApproved, ActionStatusShow},
	{RoleAnonymous, ObjectApproved, ActionShowcasePackageList},

	{RoleAuthenticated, ObjectAny, ActionShowcaseCreate},
	{RoleAuthenticated, ObjectAny, ActionShowcaseFiltered},
	{RoleAuthenticated, ObjectAny, ActionShowcaseStatistics},
	{RoleAuthenticated, ObjectAny, ActionShowcaseUpload},

	{RoleCreator, ObjectAny, ActionShowcaseUpdate},
	{RoleCreator, ObjectAny, ActionShowcaseShow},
	{RoleCreator, ObjectAny, ActionStatusShow},
	{RoleCreator, ObjectAny, ActionShowcasePackageList},
	{RoleCreator, ObjectAny, ActionPackageAssociationCreate},
	{RoleCreator, ObjectAny, ActionPackageAssociationDelete},

	{RolePortalAdmin, ObjectAny, ActionShowcaseShow},
	{RolePortalAdmin, ObjectAny, ActionStatusShow},
	{RolePortalAdmin, ObjectAny, ActionShowcasePackageList},
	{RolePortalAdmin, ObjectAny, ActionStatusUpdate},

	{RoleSysadmin, ObjectAny, ActionAdminAdd},
	{RoleSysadmin, ObjectAny, ActionAdminRemove},
	{RoleSysadmin, ObjectAny, ActionAdminList},
}

var groupings = [][]string{
	{RoleSysadmin, RolePortalAdmin},
	{RolePortalAdmin, RoleAuthenticated},
	{RoleCreator, RoleAuthenticated},
	{RoleAuthenticated, RoleAnonymous},
}

// Subject describes what the acting user is in relation to the target showcase
type Subject struct {
	LoggedIn    bool
	Creator     bool
	PortalAdmin bool
	Sysadmin    bool
}

// Roles returns the roles held by the subject
func (s Subject) Roles() []string {
	roles := []string{RoleAnonymous}
	if s.LoggedIn {
		roles = append(roles, RoleAuthenticated)
	}
	if s.LoggedIn && s.Creator {
		roles = append(roles, RoleCreator)
	}
	if s.LoggedIn && (s.PortalAdmin || s.Sysadmin) {
		roles = append(roles, RolePortalAdmin)
	}
	if s.LoggedIn && s.Sysadmin {
		roles = append(roles, RoleSysadmin)
	}
	return roles
}

// Authorizer evaluates the showcase access policy
type Authorizer struct {
	enforcer *casbin.Enforcer
}

// NewAuthorizer builds the enforcer from the embedded model and policy
func NewAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicies(groupings); err != nil {
		return nil, fmt.Errorf("failed to load role hierarchy: %w", err)
	}

	return &Authorizer{enforcer: enforcer}, nil
}

// MustNewAuthorizer is NewAuthorizer for static wiring
func MustNewAuthorizer() *Authorizer {
	a, err := NewAuthorizer()
	if err != nil {
		panic(err)
	}
	return a
}

// Allowed reports whether any role of the subject may perform action on object
func (a *Authorizer) Allowed(subject Subject, object, action string) bool {
	for _, role := range subject.Roles() {
		ok, err := a.enforcer.Enforce(role, object, action)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"role":   role,
				"object": object,
				"action": action,
			}).Error("authorization check failed")
			return false
		}
		if ok {
			return true
		}
	}
	logrus.WithFields(logrus.Fields{
		"roles":  subject.Roles(),
		"object": object,
		"action": action,
	}).Debug("authorization denied")
	return false
}

// ObjectFor returns the object class of a showcase with the given approval state
func ObjectFor(approved bool) string {
	if approved {
		return ObjectApproved
	}
	return ObjectUnapproved
}
