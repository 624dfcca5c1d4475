package skymodels

import (
	"math"
	"strings"
	"testing"
)

func TestValidateCleanLibrary(t *testing.T) {
	disk := NewSkyDiffuseMap()
	disk.Filename = "diffuse.fits"

	lib := NewSourceLibrary("clean",
		mustSkyModel(t, "point", NewPowerLaw(), NewSkyPointSource()),
		mustSkyModel(t, "shell", NewExponentialCutoffPowerLaw(), NewSkyShell()),
		mustSkyModel(t, "map", NewConstant(), disk),
	)

	if problems := lib.Validate(); len(problems) != 0 {
		t.Errorf("clean library produced problems: %v", problems)
	}
}

func TestValidateMissingParameter(t *testing.T) {
	spectral := NewPowerLaw()
	spectral.SetParameters(MustParameters(
		Parameter{Name: "index", Value: 2.0},
		// amplitude and reference removed
	))
	model := mustSkyModel(t, "truncated", spectral, NewSkyPointSource())

	problems := model.Validate()
	if len(problems) != 2 {
		t.Fatalf("got %d problems, want 2: %v", len(problems), problems)
	}
	for _, want := range []string{"spectral.amplitude", "spectral.reference"} {
		found := false
		for _, p := range problems {
			if p.Field == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no problem for %s in %v", want, problems)
		}
	}
}

func TestValidateUnexpectedParameter(t *testing.T) {
	spatial := NewSkyPointSource()
	spatial.SetParameters(MustParameters(
		Parameter{Name: "lon_0", Unit: "deg"},
		Parameter{Name: "lat_0", Unit: "deg"},
		Parameter{Name: "curvature"},
	))
	model := mustSkyModel(t, "odd", NewPowerLaw(), spatial)

	problems := model.Validate()
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
	if problems[0].Field != "spatial.curvature" {
		t.Errorf("Field = %q", problems[0].Field)
	}
	if !strings.Contains(problems[0].Message, "not declared") {
		t.Errorf("Message = %q", problems[0].Message)
	}
}

func TestValidateNonFiniteValues(t *testing.T) {
	spectral := NewPowerLaw()
	p, _ := spectral.Parameters().Get("index")
	p.Value = math.NaN()
	p.Max = math.Inf(1)

	model := mustSkyModel(t, "nan", spectral, NewSkyPointSource())

	problems := model.Validate()
	if len(problems) != 2 {
		t.Fatalf("got %d problems, want 2: %v", len(problems), problems)
	}
	for _, p := range problems {
		if p.Field != "spectral.index" {
			t.Errorf("Field = %q, want spectral.index", p.Field)
		}
	}
}

func TestValidateDuplicateSourceNames(t *testing.T) {
	lib := NewSourceLibrary("dupes",
		mustSkyModel(t, "same", NewPowerLaw(), NewSkyPointSource()),
		mustSkyModel(t, "same", NewPowerLaw(), NewSkyDisk()),
	)

	problems := lib.Validate()
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
	if !strings.Contains(problems[0].Message, `"same"`) {
		t.Errorf("Message = %q", problems[0].Message)
	}
}

func TestValidateDiffuseMapWithoutFile(t *testing.T) {
	model := mustSkyModel(t, "iso", NewConstant(), NewSkyDiffuseMap())

	problems := model.Validate()
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
	if problems[0].Field != "spatial.file" {
		t.Errorf("Field = %q", problems[0].Field)
	}
}

func TestProblemString(t *testing.T) {
	tests := []struct {
		problem Problem
		want    string
	}{
		{Problem{Source: "Crab", Field: "spectral.index", Message: "value is not finite"},
			"Crab: spectral.index: value is not finite"},
		{Problem{Field: "source.name", Message: `duplicate source name "x"`},
			`source.name: duplicate source name "x"`},
		{Problem{Message: "plain"}, "plain"},
	}
	for _, tt := range tests {
		if got := tt.problem.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
