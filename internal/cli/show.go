package cli

import (
	"github.com/bibliothecadao/desiege-cli/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id|address>",
		Short: "Show detailed deployment information",
		Example: `  # Show the recorded arbiter
  desiege show DesiegeArbiter

  # Show by full registry ID, from any network
  desiege show default/11155111/DesiegeArbiter --json

  # Find what is recorded at an address
  desiege show 0x5FbDB2315678afecb367f032d93F642f64180aa3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowDeployment.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result.Deployment)
			}
			return render.NewDeploymentRenderer(cmd.OutOrStdout()).RenderDeployment(result)
		},
	}
}
