package cli

import (
	"github.com/spf13/cobra"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
)

// NewPolicyCommand creates the policy command.
func NewPolicyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the role permission and page matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return authz.RenderMatrix(cmd.OutOrStdout())
		},
	}
}
