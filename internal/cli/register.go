package cli

import (
	"fmt"

	"github.com/bibliothecadao/desiege-cli/internal/cli/render"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var (
		overwrite bool
		tags      []string
	)

	cmd := &cobra.Command{
		Use:   "register <name> <address>",
		Short: "Register an existing contract deployment in the registry",
		Long: `Register a contract that was deployed outside of desiege so later
deployments can depend on it. The address may be hex (0x + 40 digits) or an
integer in decimal or 0x hex.`,
		Example: `  # Record an arbiter deployed elsewhere
  desiege register DesiegeArbiter 0x5FbDB2315678afecb367f032d93F642f64180aa3 --network local

  # Replace an existing record
  desiege register DesiegeArbiter 0xabc --overwrite`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			deployment, err := app.RegisterDeployment.Run(cmd.Context(), usecase.RegisterDeploymentParams{
				Name:      args[0],
				Address:   args[1],
				Overwrite: overwrite,
				Tags:      tags,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), deployment)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Registered %s at %s", deployment.ID, deployment.Address)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing deployment with the same name")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags to attach to the deployment")

	return cmd
}
