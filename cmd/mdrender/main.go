package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Drolfothesgnir/mdhtml/markdown"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errHasWarnings = errors.New("input produced warnings")

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the markdown engine name and version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%d\n", markdown.EngineName, markdown.EngineVersion)
	},
}

var rootCmd = &cobra.Command{
	Use:   "mdrender [file]",
	Short: "Render restricted Markdown to HTML",
	Long: `Converts a restricted Markdown dialect into HTML.

Supported markup: headers (# to ######), __strong__, _italic_,
[links](url) and backslash escapes. Everything else is plain text.
Reads the file given as the argument, or stdin when it is omitted or "-".`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runRender,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().BoolP("tokens", "t", false, "Print the token stream as JSON instead of HTML")
	rootCmd.Flags().BoolP("warnings", "w", false, "Report warnings to stderr")
	rootCmd.Flags().Bool("strict", false, "Fail if the input produced any warning")
	rootCmd.Flags().Bool("escape-url", false, "HTML-escape link urls")
	rootCmd.Flags().Int("max-warnings", 100, "Maximum number of warnings to collect")

	viper.BindPFlag("escape_url", rootCmd.Flags().Lookup("escape-url"))
	viper.BindPFlag("max_warnings", rootCmd.Flags().Lookup("max-warnings"))
}

// initConfig lets MDRENDER_ESCAPE_URL and MDRENDER_MAX_WARNINGS stand in for the flags.
func initConfig() {
	viper.SetEnvPrefix("MDRENDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func runRender(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res, err := markdown.Convert(input, markdown.Options{
		EscapeURL:     viper.GetBool("escape_url"),
		WarningPolicy: markdown.WarnOverflowTrunc,
		MaxWarnings:   viper.GetInt("max_warnings"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if tokens, _ := cmd.Flags().GetBool("tokens"); tokens {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Tokens); err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
	} else {
		fmt.Fprintln(out, res.HTML)
	}

	if report, _ := cmd.Flags().GetBool("warnings"); report {
		for _, w := range res.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d: %s: %s\n", w.Pos, w.Issue, w.Description)
		}
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && len(res.Warnings) > 0 {
		return fmt.Errorf("%w: %d", errHasWarnings, len(res.Warnings))
	}

	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
