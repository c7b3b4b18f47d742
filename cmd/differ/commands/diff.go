package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/differ/internal/app"
	"go.trai.ch/differ/internal/core/domain"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [DIRECTORY | PRIMARY [SECONDARY]]",
		Short: "Diff two exports, or every pair of exports in a directory",
		Long: "In the first form, diff all exports in a directory against each other. Disassembler\n" +
			"databases in the directory are exported first.\n" +
			"In the second form, diff two previously exported binaries.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			primary, _ := cmd.Flags().GetString("primary")
			secondary, _ := cmd.Flags().GetString("secondary")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			formats, _ := cmd.Flags().GetStringSlice("output-format")
			configPath, _ := cmd.Flags().GetString("config")
			exportOnly, _ := cmd.Flags().GetBool("export")
			verbose, _ := cmd.Flags().GetBool("verbose")
			noLogo, _ := cmd.Flags().GetBool("nologo")

			// Named arguments take precedence over positional ones
			if primary == "" && len(args) > 0 {
				primary, args = args[0], args[1:]
			}
			if secondary == "" && len(args) > 0 {
				secondary, args = args[0], args[1:]
			}
			if len(args) > 0 {
				return domain.ErrExtraArguments
			}

			return c.app.Diff(cmd.Context(), app.DiffOptions{
				Primary:       primary,
				Secondary:     secondary,
				OutputDir:     outputDir,
				OutputFormats: formats,
				ConfigPath:    configPath,
				ExportOnly:    exportOnly,
				NoLogo:        noLogo,
				Verbose:       verbose,
			})
		},
	}
	cmd.Flags().String("primary", "", "Primary export, or the directory to batch diff")
	cmd.Flags().String("secondary", "", "Secondary export, or the reference export of a batch diff")
	cmd.Flags().StringP("output-dir", "o", "", "Output path (defaults to the current directory, or the batch directory)")
	cmd.Flags().StringSlice("output-format", nil, "Comma-separated output formats: log, bin")
	cmd.Flags().StringP("config", "c", "", "Configuration file overlaying the defaults")
	cmd.Flags().Bool("export", false, "Export the databases of a batch directory without diffing")
	cmd.Flags().BoolP("verbose", "v", false, "Log progress details")
	cmd.Flags().Bool("nologo", false, "Do not print the version line")
	return cmd
}
