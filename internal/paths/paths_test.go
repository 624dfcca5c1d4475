package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandEnvironmentVariables(t *testing.T) {
	t.Setenv("GAMMAPY_EXTRA", "/data/gammapy-extra")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "dollar form",
			in:   "$GAMMAPY_EXTRA/test_datasets/models/examples.xml",
			want: "/data/gammapy-extra/test_datasets/models/examples.xml",
		},
		{
			name: "braced form",
			in:   "${GAMMAPY_EXTRA}/models.xml",
			want: "/data/gammapy-extra/models.xml",
		},
		{
			name: "no variables",
			in:   "relative/models.xml",
			want: "relative/models.xml",
		},
		{
			name: "unset variable kept verbatim",
			in:   "$SOURCELIB_UNSET_VARIABLE/models.xml",
			want: "$SOURCELIB_UNSET_VARIABLE/models.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.in); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := Expand("~"); got != home {
		t.Errorf("Expand(~) = %q, want %q", got, home)
	}
	if got, want := Expand("~/models.xml"), filepath.Join(home, "models.xml"); got != want {
		t.Errorf("Expand(~/models.xml) = %q, want %q", got, want)
	}
	// ~user form is not expanded.
	if got := Expand("~somebody/models.xml"); got != "~somebody/models.xml" {
		t.Errorf("Expand(~somebody/...) = %q, want it unchanged", got)
	}
}
