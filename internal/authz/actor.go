package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/metrics"
	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

// Actor is the authenticated caller a service acts on behalf of.
type Actor struct {
	UserID   uuid.UUID
	ChurchID uuid.UUID
	Role     domain.UserRole
}

// ActorFromCtx returns the caller stored in ctx, or ErrUnauthorized.
func ActorFromCtx(ctx context.Context) (Actor, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return Actor{}, domain.ErrUnauthorized
	}
	role := domain.UserRole(id.Role)
	if !role.IsValid() {
		return Actor{}, domain.ErrUnauthorized
	}
	return Actor{UserID: id.UserID, ChurchID: id.ChurchID, Role: role}, nil
}

// Require returns the caller if their role holds perm.
// No identity yields ErrUnauthorized, a role without perm yields ErrForbidden.
func Require(ctx context.Context, perm Permission) (Actor, error) {
	a, err := ActorFromCtx(ctx)
	if err != nil {
		return Actor{}, err
	}
	if !Allows(a.Role, perm) {
		metrics.RecordDenial(perm.String())
		return Actor{}, domain.ErrForbidden
	}
	return a, nil
}

// Tenant resolves the church a request targets. A zero churchID means the
// caller's own church; any other church is forbidden.
func (a Actor) Tenant(churchID uuid.UUID) (uuid.UUID, error) {
	if churchID == uuid.Nil || churchID == a.ChurchID {
		return a.ChurchID, nil
	}
	metrics.RecordDenial("tenant")
	return uuid.Nil, domain.ErrForbidden
}

// IsAdmin reports whether the caller is their church's super admin.
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleSuperAdmin
}

// WithActor returns a context carrying a as the caller.
func WithActor(ctx context.Context, a Actor) context.Context {
	return ctxutil.WithIdentity(ctx, ctxutil.Identity{
		UserID:   a.UserID,
		ChurchID: a.ChurchID,
		Role:     a.Role.String(),
	})
}

// UserGetter loads a user of a church.
type UserGetter interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
}

// UnitScope returns the unit the caller is confined to. Super admins are
// unrestricted (nil). A unit head is confined to the unit they head now,
// which is read from the store since the token may predate a reassignment.
// Any other role yields ErrForbidden.
func UnitScope(ctx context.Context, a Actor, users UserGetter) (*uuid.UUID, error) {
	if a.IsAdmin() {
		return nil, nil
	}
	if a.Role != domain.RoleUnitHead {
		metrics.RecordDenial("unit_scope")
		return nil, domain.ErrForbidden
	}
	u, err := users.GetByID(ctx, a.ChurchID, a.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("load caller: %w", err)
	}
	if u.Role != domain.RoleUnitHead || u.UnitID == nil {
		metrics.RecordDenial("unit_scope")
		return nil, domain.ErrForbidden
	}
	unitID := *u.UnitID
	return &unitID, nil
}

// CheckUnit returns ErrForbidden if scope is set and differs from unitID.
func CheckUnit(scope *uuid.UUID, unitID uuid.UUID) error {
	if scope != nil && *scope != unitID {
		metrics.RecordDenial("unit_scope")
		return domain.ErrForbidden
	}
	return nil
}
