package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gammasky/sourcelib"
	"github.com/gammasky/sourcelib/internal/cmdutil"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// outputFormat resolves the output format for a command, falling back to
// terminal detection when no flag was given.
func outputFormat(cmd *cobra.Command) (cmdutil.Format, error) {
	flags, err := cmdutil.Parse(cmd)
	if err != nil {
		return "", err
	}

	format, err := cmdutil.ParseFormat(flags.Output)
	if err != nil {
		return "", err
	}
	if format == "" {
		format = cmdutil.DetectFormat("")
	}
	return format, nil
}

// loadLibrary reads a model library, detecting XML or YAML by extension.
func loadLibrary(path string, fileFormat string) (*skymodels.SourceLibrary, error) {
	opts, err := libraryOptions(fileFormat)
	if err != nil {
		return nil, err
	}
	return sourcelib.Read(path, opts...)
}

// libraryOptions maps a --from/--to style flag value onto read/write options.
// An empty value lets extension detection decide.
func libraryOptions(fileFormat string) ([]sourcelib.Option, error) {
	if fileFormat == "" {
		return nil, nil
	}
	return []sourcelib.Option{sourcelib.WithFormat(sourcelib.Format(fileFormat))}, nil
}

// render writes data to stdout in the requested format. Table formats use
// the prepared table data, structured formats marshal the raw value.
func render(format cmdutil.Format, table cmdutil.Data, raw any) error {
	formatter := cmdutil.NewFormatter(format)
	switch format {
	case cmdutil.FormatJSON, cmdutil.FormatYAML:
		return formatter.Format(os.Stdout, raw)
	default:
		return formatter.Format(os.Stdout, table)
	}
}

// renderParameterTable prints a parameter table to stdout.
func renderParameterTable(format cmdutil.Format, params *skymodels.Parameters) error {
	return cmdutil.NewFormatter(format).Format(os.Stdout, cmdutil.ParametersToTableData(params))
}

// spatialFile returns the template path of a diffuse map model, or "".
func spatialFile(model *skymodels.SkyModel) string {
	if diffuse, ok := model.Spatial().(*skymodels.SkyDiffuseMap); ok {
		return diffuse.Filename
	}
	return ""
}

// parameterRow is the structured rendition of a model parameter.
type parameterRow struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Frozen bool    `json:"frozen"`
}

func parameterRows(params *skymodels.Parameters) []parameterRow {
	rows := make([]parameterRow, 0, params.Len())
	for _, p := range params.List() {
		rows = append(rows, parameterRow{
			Name:   p.Name,
			Value:  p.Value,
			Unit:   p.Unit,
			Min:    p.Min,
			Max:    p.Max,
			Frozen: p.Frozen,
		})
	}
	return rows
}
