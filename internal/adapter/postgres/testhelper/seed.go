package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedChurch inserts a church with a unique name.
func SeedChurch(t *testing.T, pool *pgxpool.Pool) domain.Church {
	t.Helper()

	c := domain.Church{
		ID:        uuid.New(),
		Name:      "Church " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO churches (id, name, created_at) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChurch: %v", err)
	}
	return c
}

// SeedUnit inserts a headless unit into the church.
func SeedUnit(t *testing.T, pool *pgxpool.Pool, churchID uuid.UUID, name string) domain.Unit {
	t.Helper()

	u := domain.Unit{ID: uuid.New(), ChurchID: churchID, Name: name}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO units (id, church_id, name) VALUES ($1, $2, $3)`,
		u.ID, u.ChurchID, u.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUnit: %v", err)
	}
	return u
}

// SeedUser inserts a general member with a unique email into the church.
func SeedUser(t *testing.T, pool *pgxpool.Pool, churchID uuid.UUID) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:        uuid.New(),
		ChurchID:  churchID,
		Name:      "Member " + suffix,
		Email:     "member-" + suffix + "@example.com",
		Role:      domain.RoleGeneralMember,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, church_id, name, email, email_key, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.ChurchID, u.Name, u.Email, domain.NormalizeEmail(u.Email), u.Role.String(), u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}
