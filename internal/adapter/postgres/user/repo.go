// Package user implements the user repository using PostgreSQL.
// Emails are unique per church after case folding; the folded form is kept
// in email_key next to the address as entered.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "church_id", "name", "email", "phone", "password_hash",
	"role", "unit_id", "member_of_unit_ids", "created_at",
}

const returning = "RETURNING id, church_id, name, email, phone, password_hash, role, unit_id, member_of_unit_ids, created_at"

type row struct {
	ID              uuid.UUID   `db:"id"`
	ChurchID        uuid.UUID   `db:"church_id"`
	Name            string      `db:"name"`
	Email           string      `db:"email"`
	Phone           string      `db:"phone"`
	PasswordHash    string      `db:"password_hash"`
	Role            string      `db:"role"`
	UnitID          *uuid.UUID  `db:"unit_id"`
	MemberOfUnitIDs []uuid.UUID `db:"member_of_unit_ids"`
	CreatedAt       time.Time   `db:"created_at"`
}

func (r row) toDomain() *domain.User {
	u := &domain.User{
		ID:           r.ID,
		ChurchID:     r.ChurchID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		UnitID:       r.UnitID,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if len(r.MemberOfUnitIDs) > 0 {
		u.MemberOfUnitIDs = r.MemberOfUnitIDs
	}
	return u
}

func toDomain(rows []row) []*domain.User {
	out := make([]*domain.User, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectUsers() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user of the church or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error) {
	q := r.selectUsers().Where(squirrel.Eq{"church_id": churchID, "id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}

// GetByEmail looks a user up by case-folded email within the church.
func (r *Repo) GetByEmail(ctx context.Context, churchID uuid.UUID, email string) (*domain.User, error) {
	q := r.selectUsers().Where(squirrel.Eq{
		"church_id": churchID,
		"email_key": domain.NormalizeEmail(email),
	})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "user email", fmt.Sprintf("%q", email))
	}
	return out.toDomain(), nil
}

// GetByIDs returns the church's users among ids. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	q := r.selectUsers().Where(squirrel.Eq{"church_id": churchID, "id": ids})

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "users", churchID)
	}
	return toDomain(rows), nil
}

// List returns the church's users ordered by name.
func (r *Repo) List(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error) {
	q := r.selectUsers().
		Where(squirrel.Eq{"church_id": churchID}).
		OrderBy(`name COLLATE "C"`, "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "users", churchID)
	}
	return toDomain(rows), nil
}

// CountByRole returns the number of users per role in the church.
func (r *Repo) CountByRole(ctx context.Context, churchID uuid.UUID) (map[domain.UserRole]int, error) {
	q := postgres.Builder().
		Select("role", "count(*) AS n").
		From(table).
		Where(squirrel.Eq{"church_id": churchID}).
		GroupBy("role")

	var rows []struct {
		Role string `db:"role"`
		N    int    `db:"n"`
	}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "users", churchID)
	}

	out := make(map[domain.UserRole]int, len(rows))
	for _, rw := range rows {
		out[domain.UserRole(rw.Role)] = rw.N
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user. A second user with the same folded email in the
// same church yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	memberOf := u.MemberOfUnitIDs
	if memberOf == nil {
		memberOf = []uuid.UUID{}
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Columns("email_key").
		Values(
			u.ID, u.ChurchID, u.Name, u.Email, u.Phone, u.PasswordHash,
			u.Role.String(), u.UnitID, memberOf, u.CreatedAt,
			domain.NormalizeEmail(u.Email),
		).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return out.toDomain(), nil
}

// SetRole replaces the user's role and headed unit.
func (r *Repo) SetRole(ctx context.Context, churchID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("role", role.String()).
		Set("unit_id", unitID).
		Where(squirrel.Eq{"church_id": churchID, "id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}

// RemoveUnitMembership strips unitID from every member list in the church
// and returns how many users were changed.
func (r *Repo) RemoveUnitMembership(ctx context.Context, churchID, unitID uuid.UUID) (int, error) {
	q := postgres.Builder().
		Update(table).
		Set("member_of_unit_ids", squirrel.Expr("array_remove(member_of_unit_ids, ?)", unitID)).
		Where(squirrel.Eq{"church_id": churchID}).
		Where("? = ANY(member_of_unit_ids)", unitID)

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "unit membership", unitID)
	}
	return int(n), nil
}
