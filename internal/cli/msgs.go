package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Build stylesheets from declarative definitions"
	MsgRootLong  = `lydio builds CSS stylesheets from YAML, TOML or XML definition files.

Definitions describe rules, nested rules, reusable property sets and rule
extension. The generated text is deterministic: rules keep their definition
order and nested rules are emitted right after their parent.`
	MsgVersionShort = "Print version information"
	MsgBuildShort   = "Build a stylesheet from a definition file"
	MsgBuildLong    = `Build reads a definition file (.yaml, .yml, .toml or .xml) and prints the
generated stylesheet. With --output the stylesheet is written to a file
instead. On a terminal the stylesheet is syntax highlighted unless
--format text is given or NO_COLOR is set.`
	MsgBuildExample = `  lydio build site.yaml
  lydio build site.toml -o dist/site.css
  lydio build site.xml --format text > site.css`
	MsgTreeShort = "Show the rule hierarchy of a definition file"

	// Flags
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/lydio/config.toml)"
	MsgFlagOutput  = "Write the stylesheet to this file instead of stdout"
	MsgFlagFormat  = "Output format: auto, term or text (default from config)"

	// Version output
	MsgVersionFormat = "lydio version %s\n  commit: %s\n  built:  %s\n"

	// Errors
	MsgErrNoCommand = "no command specified"
)
