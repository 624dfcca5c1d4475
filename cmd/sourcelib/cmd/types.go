package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gammasky/sourcelib/internal/cmdutil"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// typesCmd represents the types command.
var typesCmd = &cobra.Command{
	Use:     "types [spectral|spatial]",
	GroupID: "core",
	Short:   "List registered model types",
	Long: `Types lists the model type names the registry accepts in library files,
including the legacy aliases and the canonical name each alias resolves to.`,
	Example: `  sourcelib types              # All registered types
  sourcelib types spectral     # Spectral types only
  sourcelib types spatial -o json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"spectral", "spatial"},
	RunE:      runTypes,
}

func runTypes(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	var entries []cmdutil.TypeEntry
	if len(args) == 0 {
		entries = append(entries, cmdutil.TypeEntries(skymodels.CategorySpectral)...)
		entries = append(entries, cmdutil.TypeEntries(skymodels.CategorySpatial)...)
	} else {
		switch args[0] {
		case "spectral":
			entries = cmdutil.TypeEntries(skymodels.CategorySpectral)
		case "spatial":
			entries = cmdutil.TypeEntries(skymodels.CategorySpatial)
		default:
			return fmt.Errorf("unknown model category: %s", args[0])
		}
	}

	return render(format, cmdutil.TypesToTableData(entries), entries)
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
