package service

import (
	"fmt"

	"showcase-portal-backend/internal/authz"
	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/repository"
)

// accessChecker resolves an actor into an authz subject and evaluates the policy
type accessChecker struct {
	authorizer *authz.Authorizer
	adminRepo  repository.ShowcaseAdminRepositoryInterface
}

func newAccessChecker(authorizer *authz.Authorizer, adminRepo repository.ShowcaseAdminRepositoryInterface) *accessChecker {
	if authorizer == nil {
		authorizer = authz.MustNewAuthorizer()
	}
	return &accessChecker{authorizer: authorizer, adminRepo: adminRepo}
}

// isPortalAdmin is true for sysadmins and users on the showcase admin list
func (c *accessChecker) isPortalAdmin(actor Actor) (bool, error) {
	if !actor.IsLoggedIn() {
		return false, nil
	}
	if actor.Sysadmin {
		return true, nil
	}
	ok, err := c.adminRepo.IsAdmin(*actor.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to check showcase admin: %w", err)
	}
	return ok, nil
}

func (c *accessChecker) subject(actor Actor, showcase *models.Package) (authz.Subject, error) {
	portalAdmin, err := c.isPortalAdmin(actor)
	if err != nil {
		return authz.Subject{}, err
	}
	return authz.Subject{
		LoggedIn:    actor.IsLoggedIn(),
		Creator:     showcase != nil && showcase.IsCreatedBy(actor.UserID),
		PortalAdmin: portalAdmin,
		Sysadmin:    actor.IsLoggedIn() && actor.Sysadmin,
	}, nil
}

// check returns nil when allowed. Anonymous actors get ErrLoginRequired, others get denied.
func (c *accessChecker) check(actor Actor, showcase *models.Package, object, action string, denied error) error {
	subject, err := c.subject(actor, showcase)
	if err != nil {
		return err
	}
	if c.authorizer.Allowed(subject, object, action) {
		return nil
	}
	if !actor.IsLoggedIn() {
		return apperrors.ErrLoginRequired
	}
	return denied
}
