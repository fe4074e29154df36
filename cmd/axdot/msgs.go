package axdot

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Declarative environment provisioning"
	MsgApplyShort       = "Apply the configuration file"
	MsgDryApplyShort    = "Show what apply would do"
	MsgVersionShort     = "Show the current version"
	MsgCompletionsShort = "Generate shell completion script"
	MsgInitShort        = "Print an empty configuration"

	// Status messages
	MsgVersionFormat = "axdot %s (commit %s, built %s)\n"
	MsgDryRunNotice  = "\nDRY RUN MODE - No changes were made"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrRenderConfig = "failed to render configuration: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagEnvFile = "Load environment variables from a dotenv file before resolving $USER and $HOME"
	MsgFlagConfig  = "Configuration file path"
	MsgFlagReplace = "Replace files and directories that already exist without asking"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/dry-apply-long.txt
	msgDryApplyLongRaw string
	MsgDryApplyLong    = strings.TrimSpace(msgDryApplyLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/completions-long.txt
	msgCompletionsLongRaw string
	MsgCompletionsLong    = strings.TrimSpace(msgCompletionsLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
