package cli

import (
	"github.com/bibliothecadao/desiege-cli/internal/cli/render"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		contractName string
		tag          string
		allChains    bool
		asYAML       bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deployments from registry",
		Long: `List deployments recorded in the registry for the active namespace and network.

Use --all-chains to include every chain in the namespace.`,
		Example: `  # List all deployments on the active network
  desiege list

  # List DesiegeArbiter deployments across chains
  desiege list --contract DesiegeArbiter --all-chains

  # Only deployments tagged v1
  desiege list --tag v1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				ContractName: contractName,
				Tag:          tag,
				AllChains:    allChains,
			})
			if err != nil {
				return err
			}

			switch {
			case app.Config.JSON:
				return render.JSON(cmd.OutOrStdout(), result.Deployments)
			case asYAML:
				return render.YAML(cmd.OutOrStdout(), result.Deployments)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	cmd.Flags().BoolVar(&allChains, "all-chains", false, "Include deployments on every chain")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output in YAML format")

	return cmd
}
