package skymodels

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gammasky/sourcelib/pkg/errors"
)

func TestSourceLibraryOrder(t *testing.T) {
	lib := NewSourceLibrary("test library")
	lib.Add(mustSkyModel(t, "first", NewPowerLaw(), NewSkyPointSource()))
	lib.Add(mustSkyModel(t, "second", NewExponentialCutoffPowerLaw(), NewSkyGaussian()))
	lib.Add(mustSkyModel(t, "third", NewPowerLaw(), NewSkyShell()))

	if lib.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", lib.Len())
	}
	if diff := cmp.Diff([]string{"first", "second", "third"}, lib.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceLibraryLookup(t *testing.T) {
	lib := NewSourceLibrary("test library",
		mustSkyModel(t, "Crab", NewPowerLaw(), NewSkyPointSource()),
	)

	model, err := lib.Source("Crab")
	if err != nil {
		t.Fatalf("Source(Crab) error: %v", err)
	}
	if model.Name() != "Crab" {
		t.Errorf("Source(Crab).Name() = %q", model.Name())
	}

	_, err = lib.Source("Vela")
	if !errors.IsNotFound(err) {
		t.Errorf("Source(Vela) should be not-found, got %v", err)
	}
}

func TestSourceLibraryString(t *testing.T) {
	lib := NewSourceLibrary("three sources",
		mustSkyModel(t, "a", NewPowerLaw(), NewSkyPointSource()),
		mustSkyModel(t, "b", NewConstant(), NewSkyDiffuseConstant()),
	)

	s := lib.String()
	if !strings.HasPrefix(s, "SourceLibrary: three sources\n") {
		t.Errorf("String() header = %q", strings.SplitN(s, "\n", 2)[0])
	}
	if strings.Index(s, "a (") > strings.Index(s, "b (") {
		t.Error("String() should list sources in library order")
	}
}
