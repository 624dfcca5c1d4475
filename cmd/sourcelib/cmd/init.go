package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gammasky/sourcelib"
	"github.com/gammasky/sourcelib/pkg/constants"
	"github.com/gammasky/sourcelib/pkg/errors"
	"github.com/gammasky/sourcelib/pkg/logging"
	"github.com/gammasky/sourcelib/pkg/skymodels"
)

var (
	initTitle    string
	initSource   string
	initSpectral string
	initSpatial  string
	initForce    bool
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:     "init <file>",
	GroupID: "management",
	Short:   "Create a starter model library file",
	Long: `Init writes a new model library containing a single source built from
registry defaults. The spectral and spatial types accept any registered
name, including legacy aliases.`,
	Example: `  sourcelib init models.xml
  sourcelib init models.yaml --source "3C 273" --spectral LogParabola
  sourcelib init crab.xml --spatial SkyGaussian --title "crab field"`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	path := args[0]
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return errors.NewValidationError("file", path, "already exists (use --force to overwrite)")
		}
	}

	spectral, err := skymodels.NewSpectralModel(initSpectral)
	if err != nil {
		return err
	}
	spatial, err := skymodels.NewSpatialModel(initSpatial)
	if err != nil {
		return err
	}

	model, err := skymodels.NewSkyModel(initSource, spectral, spatial)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO(err, "create", dir)
		}
	}

	lib := skymodels.NewSourceLibrary(initTitle, model)
	if err := sourcelib.Write(lib, path); err != nil {
		return err
	}

	logging.Info().
		Str("path", path).
		Str("source", initSource).
		Str("spectral", spectral.TypeName()).
		Str("spatial", spatial.TypeName()).
		Msg("Created model library")
	return nil
}

func init() {
	initCmd.Flags().StringVar(&initTitle, "title", constants.DefaultLibraryTitle, "Library title")
	initCmd.Flags().StringVar(&initSource, "source", "NewSource", "Name of the scaffolded source")
	initCmd.Flags().StringVar(&initSpectral, "spectral", skymodels.TypePowerLaw, "Spectral model type")
	initCmd.Flags().StringVar(&initSpatial, "spatial", skymodels.TypePointSource, "Spatial model type")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
