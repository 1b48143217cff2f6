package cli

import (
	"fmt"

	"github.com/bibliothecadao/desiege-cli/internal/cli/render"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/spf13/cobra"
)

type tagFlags struct {
	add    string
	remove string
}

// NewTagCmd creates the tag command
func NewTagCmd() *cobra.Command {
	flags := &tagFlags{}

	cmd := &cobra.Command{
		Use:   "tag <name>",
		Short: "Manage deployment tags",
		Long: `Show, add or remove tags on a recorded deployment.

Without flags the current tags are shown.`,
		Example: `  desiege tag DesiegeArbiter
  desiege tag DesiegeArbiter --add v1
  desiege tag DesiegeArbiter --remove v1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTag(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.add, "add", "", "Add a tag to the deployment")
	cmd.Flags().StringVar(&flags.remove, "remove", "", "Remove a tag from the deployment")

	return cmd
}

func runTag(cmd *cobra.Command, args []string, flags *tagFlags) error {
	if flags.add != "" && flags.remove != "" {
		return fmt.Errorf("cannot use --add and --remove together")
	}

	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	params := usecase.TagDeploymentParams{
		Name:      args[0],
		Operation: usecase.TagShow,
	}
	switch {
	case flags.add != "":
		params.Tag = flags.add
		params.Operation = usecase.TagAdd
	case flags.remove != "":
		params.Tag = flags.remove
		params.Operation = usecase.TagRemove
	}

	result, err := app.TagDeployment.Run(cmd.Context(), params)
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.JSON(cmd.OutOrStdout(), result.Deployment)
	}
	return render.NewTagRenderer(cmd.OutOrStdout()).Render(result)
}
