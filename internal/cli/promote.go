package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

type roleSetter interface {
	GetByEmail(ctx context.Context, churchID uuid.UUID, email string) (*domain.User, error)
	SetRole(ctx context.Context, churchID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error)
}

// NewPromoteCommand creates the promote command.
func NewPromoteCommand() *cobra.Command {
	var churchRaw, email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Make a member the Super Admin of their church",
		Long: `Promote a user to Super Admin by email. Unit Heads are refused: reassign
their unit first so it is not left without a head.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			churchID, err := uuid.Parse(churchRaw)
			if err != nil {
				return fmt.Errorf("--church: %w", err)
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			st, err := e.openPostgres(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			u, changed, err := promote(cmd.Context(), st.Users, churchID, email)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already a Super Admin\n", u.Email)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s promoted to Super Admin\n", u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&churchRaw, "church", "", "church id")
	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	_ = cmd.MarkFlagRequired("church")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// promote sets the user's role to Super Admin. It reports false when the
// user already held it.
func promote(ctx context.Context, users roleSetter, churchID uuid.UUID, email string) (*domain.User, bool, error) {
	u, err := users.GetByEmail(ctx, churchID, email)
	if err != nil {
		return nil, false, fmt.Errorf("find %s: %w", email, err)
	}
	switch u.Role {
	case domain.RoleSuperAdmin:
		return u, false, nil
	case domain.RoleUnitHead:
		return nil, false, fmt.Errorf("%s heads a unit; reassign it first: %w", email, domain.ErrConflict)
	}

	u, err = users.SetRole(ctx, churchID, u.ID, domain.RoleSuperAdmin, nil)
	if err != nil {
		return nil, false, fmt.Errorf("promote %s: %w", email, err)
	}
	return u, true, nil
}
