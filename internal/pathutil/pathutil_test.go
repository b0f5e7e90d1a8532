package pathutil

import "testing"

func TestExtension(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"paper.pdf", "pdf", true},
		{"paper.PDF", "pdf", true},
		{"archive.tar.gz", "gz", true},
		{"notes.pdf ", "pdf", true},

		// No usable extension
		{"README", "", false},
		{".gitignore", "", false},
		{"archive.", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extension(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Extension(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"smith2020.pdf", "smith2020"},
		{"archive.tar.gz", "archive.tar"},
		{"README", "README"},
		{".gitignore", ".gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stem(tt.name); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		platform Platform
		path     string
		want     string
	}{
		{Unix, "/papers/smith2020.pdf", "smith2020.pdf"},
		{Unix, "smith2020.pdf", "smith2020.pdf"},
		{Windows, `C:\papers\smith2020.pdf`, "smith2020.pdf"},
		{Windows, `C:/papers/smith2020.pdf`, "smith2020.pdf"},

		// Backslash is an ordinary character under the forward-slash
		// convention.
		{Unix, `C:\papers\smith2020.pdf`, `C:\papers\smith2020.pdf`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := tt.platform.Base(tt.path); got != tt.want {
				t.Errorf("Base(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
