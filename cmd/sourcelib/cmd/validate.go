package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gammasky/sourcelib/internal/cmdutil"
	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/logging"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

var (
	validateFrom          string
	validateQuietProblems bool
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:     "validate <file>...",
	GroupID: "management",
	Short:   "Validate model library files",
	Long: `Validate checks model library files for problems beyond well-formedness:
duplicate source names, parameters missing from a model type, undeclared
parameter names, non-finite values, and diffuse maps without a template file.

Files that cannot be parsed at all are reported as errors and the command
exits 1. Files that parse but have problems make the command exit 2,
unless --quiet-problems downgrades them.`,
	Example: `  sourcelib validate models.xml
  sourcelib validate models.xml extra.yaml -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

// problemRow is the structured rendition of one validation problem.
type problemRow struct {
	Source  string `json:"source"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fileReport is the structured validation result for one file.
type fileReport struct {
	Path     string       `json:"path"`
	Error    string       `json:"error,omitempty"`
	Problems []problemRow `json:"problems,omitempty"`

	problems []skymodels.Problem
}

func problemRows(problems []skymodels.Problem) []problemRow {
	rows := make([]problemRow, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, problemRow{Source: p.Source, Field: p.Field, Message: p.Message})
	}
	return rows
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	var reports []fileReport
	unreadable := 0
	withProblems := 0
	for _, path := range args {
		report := fileReport{Path: path}

		lib, err := loadLibrary(path, validateFrom)
		if err != nil {
			report.Error = err.Error()
			unreadable++
		} else {
			report.problems = lib.Validate()
			report.Problems = problemRows(report.problems)
			if len(report.Problems) > 0 {
				withProblems++
			}
		}

		reports = append(reports, report)
	}

	if format == cmdutil.FormatJSON || format == cmdutil.FormatYAML {
		if err := cmdutil.NewFormatter(format).Format(os.Stdout, reports); err != nil {
			return err
		}
	} else {
		printReports(reports)
	}

	if unreadable > 0 {
		return errors.NewValidationError("library", nil,
			fmt.Sprintf("%d of %d file(s) could not be read", unreadable, len(args)))
	}
	if withProblems > 0 && !validateQuietProblems {
		os.Exit(2)
	}

	logging.Debug().Int("files", len(args)).Msg("All libraries validated")
	return nil
}

func printReports(reports []fileReport) {
	for _, report := range reports {
		switch {
		case report.Error != "":
			fmt.Printf("%s: error: %s\n", report.Path, report.Error)
		case len(report.Problems) == 0:
			fmt.Printf("%s: ok\n", report.Path)
		default:
			fmt.Printf("%s: %d problem(s)\n", report.Path, len(report.Problems))
			formatter := cmdutil.NewFormatter(cmdutil.FormatTable)
			_ = formatter.Format(os.Stdout, cmdutil.ProblemsToTableData(report.problems))
		}
	}
}

func init() {
	validateCmd.Flags().StringVar(&validateFrom, "from", "", "Input format: xml or yaml (default: by extension)")
	validateCmd.Flags().BoolVar(&validateQuietProblems, "quiet-problems", false, "Exit 0 even when files have problems")
	rootCmd.AddCommand(validateCmd)
}
