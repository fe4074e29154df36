package axdot

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xrelkd/axdot/pkg/config"
	"github.com/xrelkd/axdot/pkg/environment"
	"github.com/xrelkd/axdot/pkg/manager"
	"github.com/xrelkd/axdot/pkg/ui"
	"github.com/xrelkd/axdot/pkg/ui/confirmations"
)

// applyOptions are the flags of apply and dry-apply
type applyOptions struct {
	configFile string
	replace    bool
}

func newApplyCmd(global *globalOptions) *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, global, opts, false)
		},
	}
	addApplyFlags(cmd, opts)
	return cmd
}

func newDryApplyCmd(global *globalOptions) *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:     "dry-apply",
		Short:   MsgDryApplyShort,
		Long:    MsgDryApplyLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runApply(cmd, global, opts, true); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			return nil
		},
	}
	addApplyFlags(cmd, opts)
	return cmd
}

func addApplyFlags(cmd *cobra.Command, opts *applyOptions) {
	cmd.Flags().StringVar(&opts.configFile, "config", config.DefaultFileName, MsgFlagConfig)
	cmd.Flags().BoolVarP(&opts.replace, "replace", "r", false, MsgFlagReplace)
	_ = cmd.MarkFlagFilename("config", "yaml", "yml", "toml")
}

// runApply resolves settings, the user context and the configuration, then
// hands them to the manager. Flags given on the command line win over
// settings.
func runApply(cmd *cobra.Command, global *globalOptions, opts *applyOptions, dryRun bool) error {
	settings, err := config.LoadSettings("")
	if err != nil {
		return err
	}

	configFile := settings.ConfigFile
	if cmd.Flags().Changed("config") || configFile == "" {
		configFile = opts.configFile
	}
	replace := opts.replace || settings.Replace

	envFile := settings.EnvFile
	if cmd.Flags().Changed("env-file") {
		envFile = global.envFile
	}
	if err := environment.LoadEnvFile(envFile); err != nil {
		return err
	}

	ctx, err := environment.FromEnv()
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log.Info().
		Str("config", configFile).
		Bool("dryRun", dryRun).
		Bool("replace", replace).
		Msg("Configuration loaded")

	format := ui.FormatAuto
	if settings.NoColor {
		format = ui.FormatText
	}

	in, out, errOut := cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()
	m := manager.New(cfg,
		manager.WithReporter(ui.NewReporter(out, format)),
		manager.WithPrompter(confirmations.NewConsole(in, out, errOut)),
		manager.WithStdio(in, out, errOut),
	)
	return m.Apply(dryRun, replace, ctx)
}
