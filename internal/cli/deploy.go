package cli

import (
	"strings"

	"github.com/bibliothecadao/desiege-cli/internal/app"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command and its module-controller subcommand
func NewDeployCmd() *cobra.Command {
	var (
		label string
		deps  []string
		args  []string
	)

	cmd := &cobra.Command{
		Use:   "deploy <artifact>",
		Short: "Deploy a contract from its Foundry artifact",
		Long: `Deploy a single contract. Each --dep is looked up in the registry and its
address is passed as a constructor argument, in order, followed by any --arg
values. The new deployment is recorded under --label (defaults to the contract
name).

Failures are reported on stderr. Pass --strict to also exit with a non-zero
status.`,
		Example: `  # Deploy the module controller against the recorded arbiter
  desiege deploy module-controller --network sepolia

  # Deploy any artifact with registry dependencies
  desiege deploy DesiegeModuleController --dep DesiegeArbiter

  # Pick one of several artifacts sharing a name
  desiege deploy src/Desiege.sol:DesiegeArbiter --arg 100 --label Arbiter`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return newCompletion(cmd, app).handle(func() (*usecase.DeployContractResult, error) {
				artifactName, err := app.ResolveArtifact.Run(ctx, cmdArgs[0])
				if err != nil {
					return nil, err
				}

				displayName := label
				if displayName == "" {
					displayName = contractNameOf(artifactName)
				}

				return app.DeployContract.Run(ctx, usecase.DeployContractParams{
					DisplayName:  displayName,
					ArtifactName: artifactName,
					Dependencies: deps,
					Args:         args,
				})
			})
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Registry name for the new deployment")
	cmd.Flags().StringArrayVar(&deps, "dep", nil, "Deployed contract whose address is a constructor argument (repeatable, in order)")
	cmd.Flags().StringArrayVar(&args, "arg", nil, "Literal constructor argument appended after dependencies (repeatable)")

	cmd.AddCommand(newDeployModuleControllerCmd())

	return cmd
}

func newDeployModuleControllerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "module-controller",
		Short: "Deploy " + usecase.ModuleControllerContract + " linked to the recorded " + usecase.ArbiterContract,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return newCompletion(cmd, app).handle(func() (*usecase.DeployContractResult, error) {
				return app.DeployModuleController.Run(ctx)
			})
		},
	}
}

func newCompletion(cmd *cobra.Command, a *app.App) completion {
	return completion{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		strict: a.Config.Strict,
		json:   a.Config.JSON,
	}
}

// contractNameOf strips the "File.sol:" prefix from an artifact reference
func contractNameOf(ref string) string {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
