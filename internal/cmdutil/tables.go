package cmdutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gammasky/sourcelib/pkg/constants"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

// LibraryToTableData converts a source library to table format. Source
// names are capped at MaxNameWidth; wide mode adds fit-state counts and
// the merged parameter names.
func LibraryToTableData(lib *skymodels.SourceLibrary, wide bool) Data {
	headers := []string{"Name", "Type", "Spectral", "Spatial", "Parameters"}
	if wide {
		headers = append(headers, "Free", "Frozen", "Names")
	}

	rows := make([][]string, 0, lib.Len())
	for _, model := range lib.SkyModels {
		row := []string{
			Truncate(model.Name(), constants.MaxNameWidth),
			model.SourceType().String(),
			model.Spectral().TypeName(),
			model.Spatial().TypeName(),
			strconv.Itoa(model.Parameters().Len()),
		}

		if wide {
			free, frozen := countByState(model)
			row = append(row, strconv.Itoa(free), strconv.Itoa(frozen),
				JoinNames(model.Parameters().Names()))
		}

		rows = append(rows, row)
	}

	alignment := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		alignment = append(alignment, AlignRight, AlignRight, AlignLeft)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// ParametersToTableData converts a parameter set to table format.
func ParametersToTableData(params *skymodels.Parameters) Data {
	rows := make([][]string, 0, params.Len())
	for _, p := range params.List() {
		rows = append(rows, []string{
			p.Name,
			FormatFloat(p.Value),
			FormatUnit(p.Unit),
			FormatFloat(p.Min),
			FormatFloat(p.Max),
			FormatState(p.Frozen),
		})
	}

	return Data{
		Headers: []string{"Parameter", "Value", "Unit", "Min", "Max", "State"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignRight, AlignLeft, AlignRight, AlignRight, AlignLeft,
		},
	}
}

// ProblemsToTableData converts validation problems to table format.
func ProblemsToTableData(problems []skymodels.Problem) Data {
	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, []string{p.Source, p.Field, p.Message})
	}

	return Data{
		Headers: []string{"Source", "Field", "Problem"},
		Rows:    rows,
	}
}

// TypeEntry describes one registered model type for display.
type TypeEntry struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Canonical string `json:"canonical,omitempty"`
}

// TypeEntries lists the registered type names for a model category,
// marking aliases with the canonical name they resolve to.
func TypeEntries(category skymodels.ModelCategory) []TypeEntry {
	var names []string
	switch category {
	case skymodels.CategorySpectral:
		names = skymodels.SpectralTypeNames()
	case skymodels.CategorySpatial:
		names = skymodels.SpatialTypeNames()
	}

	entries := make([]TypeEntry, 0, len(names))
	for _, name := range names {
		entry := TypeEntry{Name: name, Category: category.String()}
		if model, err := skymodels.NewModel(category, name); err == nil {
			if canonical := model.TypeName(); canonical != name {
				entry.Canonical = canonical
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// TypesToTableData converts type entries to table format.
func TypesToTableData(entries []TypeEntry) Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		kind := "canonical"
		canonical := "-"
		if e.Canonical != "" {
			kind = "alias"
			canonical = e.Canonical
		}
		rows = append(rows, []string{e.Name, e.Category, kind, canonical})
	}

	return Data{
		Headers: []string{"Type", "Category", "Kind", "Resolves To"},
		Rows:    rows,
	}
}

// FormatFloat renders a parameter value the way the XML writer does.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatUnit renders a unit string, with a placeholder for dimensionless values.
func FormatUnit(unit string) string {
	if unit == "" {
		return "-"
	}
	return unit
}

// FormatState renders the fit state of a parameter.
func FormatState(frozen bool) string {
	if frozen {
		return "frozen"
	}
	return "free"
}

// Truncate shortens a string to max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// SummarizeModel produces a one-line description of a sky model.
func SummarizeModel(model *skymodels.SkyModel) string {
	return fmt.Sprintf("%s (%s): %s + %s, %d parameters",
		model.Name(),
		model.SourceType(),
		model.Spectral().TypeName(),
		model.Spatial().TypeName(),
		model.Parameters().Len(),
	)
}

func countByState(model *skymodels.SkyModel) (free, frozen int) {
	for _, p := range model.Parameters().List() {
		if p.Frozen {
			frozen++
		} else {
			free++
		}
	}
	return free, frozen
}

// JoinNames renders a name list for compact display.
func JoinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
