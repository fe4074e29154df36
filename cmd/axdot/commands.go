package axdot

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xrelkd/axdot/internal/version"
	"github.com/xrelkd/axdot/pkg/config"
	"github.com/xrelkd/axdot/pkg/logging"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	envFile   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "axdot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", MsgFlagEnvFile)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newDryApplyCmd(opts))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionsCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completions [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionsShort,
		Long:                  MsgCompletionsLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return fmt.Errorf(MsgErrRenderConfig, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
