package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gammasky/sourcelib/internal/cmdutil"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

var showFrom string

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:     "show <file> [source]",
	GroupID: "core",
	Short:   "Show source models in detail",
	Long: `Show displays a single source from a model library, including every
parameter of its spectral and spatial models with values, units, bounds,
and fit state. Without a source name, every source is shown.`,
	Example: `  sourcelib show models.xml "3C 273"
  sourcelib show models.xml
  sourcelib show models.yaml CrabNebula -o yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

// modelDetail is the structured rendition of one sub-model.
type modelDetail struct {
	Type       string         `json:"type"`
	File       string         `json:"file,omitempty"`
	Parameters []parameterRow `json:"parameters"`
}

// sourceDetail is the structured rendition of a full source entry.
type sourceDetail struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Spectral modelDetail `json:"spectral"`
	Spatial  modelDetail `json:"spatial"`
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	lib, err := loadLibrary(args[0], showFrom)
	if err != nil {
		return err
	}

	models := lib.SkyModels
	if len(args) == 2 {
		model, err := lib.Source(args[1])
		if err != nil {
			return err
		}
		models = []*skymodels.SkyModel{model}
	}

	if format == cmdutil.FormatJSON || format == cmdutil.FormatYAML {
		details := make([]sourceDetail, 0, len(models))
		for _, model := range models {
			details = append(details, detailFor(model))
		}
		if len(args) == 2 {
			// A named source renders as a single object, not a list.
			return cmdutil.NewFormatter(format).Format(os.Stdout, details[0])
		}
		return cmdutil.NewFormatter(format).Format(os.Stdout, details)
	}

	for i, model := range models {
		if i > 0 {
			fmt.Println()
		}
		if err := printModel(format, model); err != nil {
			return err
		}
	}
	return nil
}

func detailFor(model *skymodels.SkyModel) sourceDetail {
	return sourceDetail{
		Name: model.Name(),
		Type: model.SourceType().String(),
		Spectral: modelDetail{
			Type:       model.Spectral().TypeName(),
			Parameters: parameterRows(model.Spectral().Parameters()),
		},
		Spatial: modelDetail{
			Type:       model.Spatial().TypeName(),
			File:       spatialFile(model),
			Parameters: parameterRows(model.Spatial().Parameters()),
		},
	}
}

func printModel(format cmdutil.Format, model *skymodels.SkyModel) error {
	fmt.Println(cmdutil.SummarizeModel(model))
	fmt.Println()

	fmt.Printf("Spectral: %s\n", model.Spectral().TypeName())
	if err := renderParameterTable(format, model.Spectral().Parameters()); err != nil {
		return err
	}

	fmt.Printf("\nSpatial: %s\n", model.Spatial().TypeName())
	if file := spatialFile(model); file != "" {
		fmt.Printf("File: %s\n", file)
	}
	return renderParameterTable(format, model.Spatial().Parameters())
}

func init() {
	showCmd.Flags().StringVar(&showFrom, "from", "", "Input format: xml or yaml (default: by extension)")
	rootCmd.AddCommand(showCmd)
}
