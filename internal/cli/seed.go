package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joseph-Edoh/Church-connect/internal/app"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo churches into the database",
		Long: `Load the seed fixture into the database. Churches that already exist
are skipped, so running it twice is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if file != "" {
				e.cfg.Seed.File = file
			}

			st, err := e.openPostgres(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			sum, err := app.SeedStorage(cmd.Context(), e.cfg, e.logger, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d church(es), skipped %d\n", sum.Created, sum.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture (default: built-in demo data)")
	return cmd
}
