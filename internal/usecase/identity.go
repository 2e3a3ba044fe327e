package usecase

import (
	"storefront-orders/internal/domain/user"
	"storefront-orders/internal/pkg/errs"
	"storefront-orders/internal/pkg/jwt"
)

var ErrInvalidCredentials = errs.NewKind(errs.ErrUnauthorized, "missing or invalid credentials")

// IdentityResolver turns an identity-service token into the caller's identity.
type IdentityResolver interface {
	Resolve(token string) (user.Identity, error)
}

type identityResolverImpl struct {
	jwtService *jwt.Service
	staff      user.StaffPolicy
}

func NewIdentityResolver(jwtService *jwt.Service, staff user.StaffPolicy) IdentityResolver {
	return &identityResolverImpl{
		jwtService: jwtService,
		staff:      staff,
	}
}

func (r *identityResolverImpl) Resolve(token string) (user.Identity, error) {
	if token == "" {
		return user.Identity{}, ErrInvalidCredentials
	}
	claims, err := r.jwtService.ValidateToken(token)
	if err != nil {
		return user.Identity{}, errs.Attach(ErrInvalidCredentials, err)
	}

	email, err := user.NewEmail(claims.Email)
	if err != nil {
		return user.Identity{}, errs.Attach(ErrInvalidCredentials, err)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Identity{}, err
	}

	return user.NewIdentity(claims.Subject, email, role, r.staff), nil
}
