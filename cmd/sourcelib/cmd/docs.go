package cmd

import (
	"io"
	"os"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/gammasky/sourcelib"
	"github.com/gammasky/sourcelib/internal/cmdutil"
	"github.com/gammasky/sourcelib/pkg/constants"
	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

var (
	docsFile string
	docsFrom string
)

// docsCmd represents the docs command.
var docsCmd = &cobra.Command{
	Use:     "docs [library]",
	GroupID: "management",
	Short:   "Generate Markdown documentation",
	Long: `Docs generates a Markdown report of a model library: a summary table of
its sources followed by a parameter table per source.

Without a library argument it generates a reference of every registered
model type with its default parameters, the accepted legacy aliases, and
an example library document.`,
	Example: `  sourcelib docs                          # Type reference to stdout
  sourcelib docs models.xml               # Library report to stdout
  sourcelib docs models.xml --file REPORT.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

func runDocs(_ *cobra.Command, args []string) error {
	write := writeReference
	if len(args) == 1 {
		lib, err := loadLibrary(args[0], docsFrom)
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return writeLibraryReport(w, lib) }
	}

	if docsFile == "" {
		return write(os.Stdout)
	}

	f, err := os.OpenFile(docsFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO(err, "create", docsFile)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeLibraryReport renders one library as a Markdown report.
func writeLibraryReport(w io.Writer, lib *skymodels.SourceLibrary) error {
	doc := md.NewMarkdown(w)

	title := lib.Title
	if title == "" {
		title = "Source Library"
	}
	doc.H1(title)
	doc.PlainTextf("%d source(s).", lib.Len())
	doc.LF()

	summary := make([][]string, 0, lib.Len())
	for _, model := range lib.SkyModels {
		free, frozen := 0, 0
		for _, p := range model.Parameters().List() {
			if p.Frozen {
				frozen++
			} else {
				free++
			}
		}
		summary = append(summary, []string{
			model.Name(),
			model.SourceType().String(),
			model.Spectral().TypeName(),
			model.Spatial().TypeName(),
			strconv.Itoa(free),
			strconv.Itoa(frozen),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Source", "Type", "Spectral", "Spatial", "Free", "Frozen"},
		Rows:   summary,
	})

	for _, model := range lib.SkyModels {
		doc.H2(model.Name())
		doc.PlainTextf("%s, %s + %s.", model.SourceType(), model.Spectral().TypeName(), model.Spatial().TypeName())
		doc.LF()
		if file := spatialFile(model); file != "" {
			doc.PlainTextf("Template file: `%s`", file)
			doc.LF()
		}
		doc.Table(md.TableSet{
			Header: []string{"Parameter", "Value", "Unit", "Min", "Max", "State"},
			Rows:   parameterTableRows(model),
		})
	}

	return doc.Build()
}

// parameterTableRows renders the merged parameter view of one source.
func parameterTableRows(model *skymodels.SkyModel) [][]string {
	params := model.Parameters()
	rows := make([][]string, 0, params.Len())
	for _, p := range params.List() {
		rows = append(rows, []string{
			p.Name,
			cmdutil.FormatFloat(p.Value),
			cmdutil.FormatUnit(p.Unit),
			cmdutil.FormatFloat(p.Min),
			cmdutil.FormatFloat(p.Max),
			cmdutil.FormatState(p.Frozen),
		})
	}
	return rows
}

// writeReference renders the model type reference as Markdown.
func writeReference(w io.Writer) error {
	doc := md.NewMarkdown(w)

	doc.H1("Model Library Reference")
	doc.PlainText("Source libraries pair each source with one spectral and one spatial model.")
	doc.PlainText("The tables below list every registered model type with its default parameters.")
	doc.LF()

	doc.H2("Spectral Models")
	writeCategory(doc, skymodels.CategorySpectral, skymodels.SpectralTypeNames())

	doc.H2("Spatial Models")
	writeCategory(doc, skymodels.CategorySpatial, skymodels.SpatialTypeNames())

	doc.H2("Type Aliases")
	doc.PlainText("Legacy type names from Fermi-LAT and ctools files resolve to canonical types:")
	doc.LF()
	doc.Table(md.TableSet{
		Header: []string{"Alias", "Category", "Canonical Type"},
		Rows:   aliasRows(),
	})

	doc.H2("Example")
	example, err := exampleDocument()
	if err != nil {
		return err
	}
	doc.CodeBlocks(md.SyntaxHighlight("xml"), example)

	return doc.Build()
}

// writeCategory renders one H3 section per canonical type in a category.
func writeCategory(doc *md.Markdown, category skymodels.ModelCategory, names []string) {
	for _, name := range names {
		model, err := skymodels.NewModel(category, name)
		if err != nil || model.TypeName() != name {
			// Aliases are documented in their own section.
			continue
		}

		doc.H3(name)
		rows := make([][]string, 0, model.Parameters().Len())
		for _, p := range model.Parameters().List() {
			rows = append(rows, []string{
				p.Name,
				cmdutil.FormatFloat(p.Value),
				cmdutil.FormatUnit(p.Unit),
				cmdutil.FormatFloat(p.Min),
				cmdutil.FormatFloat(p.Max),
				cmdutil.FormatState(p.Frozen),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Parameter", "Value", "Unit", "Min", "Max", "State"},
			Rows:   rows,
		})
	}
}

// aliasRows collects every registered alias with its canonical resolution.
func aliasRows() [][]string {
	var rows [][]string
	for _, category := range []skymodels.ModelCategory{skymodels.CategorySpectral, skymodels.CategorySpatial} {
		for _, entry := range cmdutil.TypeEntries(category) {
			if entry.Canonical == "" {
				continue
			}
			rows = append(rows, []string{entry.Name, entry.Category, entry.Canonical})
		}
	}
	return rows
}

// exampleDocument renders a one-source starter library.
func exampleDocument() (string, error) {
	model, err := skymodels.NewSkyModel("ExampleSource", skymodels.NewPowerLaw(), skymodels.NewSkyPointSource())
	if err != nil {
		return "", err
	}

	data, err := sourcelib.Marshal(skymodels.NewSourceLibrary(constants.DefaultLibraryTitle, model))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func init() {
	docsCmd.Flags().StringVar(&docsFile, "file", "", "Write the document to a file instead of stdout")
	docsCmd.Flags().StringVar(&docsFrom, "from", "", "Input format: xml or yaml (default: by extension)")
	rootCmd.AddCommand(docsCmd)
}
