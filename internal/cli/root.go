package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/bibliothecadao/desiege-cli/internal/adapters/progress"
	"github.com/bibliothecadao/desiege-cli/internal/app"
	"github.com/bibliothecadao/desiege-cli/internal/config"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// teardown holds what PersistentPreRunE acquired for the current execution
type teardown struct {
	funcs []func()
}

func (t *teardown) add(f func()) { t.funcs = append(t.funcs, f) }

// run releases everything in reverse order. Safe to call more than once.
func (t *teardown) run() {
	funcs := t.funcs
	t.funcs = nil
	for _, f := range slices.Backward(funcs) {
		f()
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	td := &teardown{}

	rootCmd := &cobra.Command{
		Use:   "desiege",
		Short: "Deploy and track Desiege contracts on Foundry projects",
		Long: `desiege deploys Desiege contracts from Foundry artifacts, resolving the
addresses they depend on from a local deployment registry.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewSpinnerSink()
			if v.GetBool("json") {
				sink = progress.NewNopSink()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			appInstance, cleanup, err := app.InitApp(ctx, v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			td.add(cleanup)

			ctx = context.WithValue(ctx, appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				td.add(cancel)
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			td.run()
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("strict", false, "Exit with a non-zero status when a deployment fails")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Resolve and simulate without sending transactions")
	rootCmd.PersistentFlags().StringP("namespace", "s", "", "Deployment namespace (defaults to 'default') [also sets foundry profile]")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia, local)")
	rootCmd.PersistentFlags().String("sender", "", "Sender from desiege.toml to deploy with (defaults to 'deployer')")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "main"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	registerCmd := NewRegisterCmd()
	registerCmd.GroupID = "management"
	rootCmd.AddCommand(registerCmd)

	tagCmd := NewTagCmd()
	tagCmd.GroupID = "management"
	rootCmd.AddCommand(tagCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	releaseOnError(rootCmd, td)

	return rootCmd
}

// releaseOnError runs td when a command fails, since cobra skips the
// post-run hooks in that case.
func releaseOnError(cmd *cobra.Command, td *teardown) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if err != nil {
				td.run()
			}
			return err
		}
	}
	for _, sub := range cmd.Commands() {
		releaseOnError(sub, td)
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
