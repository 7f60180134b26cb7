package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"specsim/internal/models"
)

const specFragment = `<ul id="general"><li>OS: Android 5.1</li><li>Weight: 150g</li></ul>` +
	`<ul id="Display"><li>Size: 5.5"</li></ul>` +
	`<ul id="Ports"><li>USB: micro</li></ul>` +
	`<ul id="Media_Formats"><li>Audio: MP3 &amp; AAC</li></ul>`

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		mode Mode
		want string
	}{
		{
			name: "text strips tags and whitespace",
			raw:  "<ul>\n  <li>  OS: A </li>\n<li>RAM: 2GB</li></ul>",
			mode: ModeText,
			want: "OS: A\nRAM: 2GB",
		},
		{
			name: "text decodes entities",
			raw:  "<p>Tom &amp; Jerry</p>",
			mode: ModeText,
			want: "Tom & Jerry",
		},
		{
			name: "text skips comments",
			raw:  "<p>before<!-- hidden -->after</p>",
			mode: ModeText,
			want: "before\nafter",
		},
		{
			name: "plain text passes through",
			raw:  "  just words  ",
			mode: ModeText,
			want: "just words",
		},
		{
			name: "pretty indents one space per level",
			raw:  "<ul id='general'><li>OS: A</li></ul>",
			mode: ModePretty,
			want: "<ul id=\"general\">\n <li>\n  OS: A\n </li>\n</ul>\n",
		},
		{
			name: "pretty leaves void elements open",
			raw:  "<p>a<br>b</p>",
			mode: ModePretty,
			want: "<p>\n a\n <br>\n b\n</p>\n",
		},
		{
			name: "raw returns input",
			raw:  "<b>x</b>",
			mode: ModeRaw,
			want: "<b>x</b>",
		},
		{
			name: "integer falls back to literal",
			raw:  12345,
			mode: ModeText,
			want: "12345",
		},
		{
			name: "json number falls back to literal",
			raw:  json.Number("3.5"),
			mode: ModePretty,
			want: "3.5",
		},
		{
			name: "nil renders empty",
			raw:  nil,
			mode: ModeText,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.raw, tt.mode); got != tt.want {
				t.Errorf("Render(%v, %v) = %q, want %q", tt.raw, tt.mode, got, tt.want)
			}
		})
	}
}

func TestRender_PrettyTextRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
	}{
		{name: "specification", fragment: specFragment},
		{name: "nested paragraphs", fragment: "<div><p>One <b>bold</b> word</p><p>Two\n lines</p></div>"},
		{name: "table with entity", fragment: "<table><tr><td>a &lt; b</td><td>c</td></tr></table>"},
		{name: "comment and script", fragment: "<p>x<!-- c -->y</p><script>var a = 1 < 2;</script>"},
		{name: "noscript markup stays raw", fragment: "<noscript><b>x</b></noscript>"},
		{name: "noscript next to text", fragment: "<p>a &amp; b</p><noscript><img src=x> & more</noscript>"},
		{name: "no markup", fragment: "no markup at all"},
		{name: "empty", fragment: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direct := Render(tt.fragment, ModeText)
			viaPretty := Render(Render(tt.fragment, ModePretty), ModeText)
			if direct != viaPretty {
				t.Errorf("round trip of %q: direct %q, via pretty %q", tt.fragment, direct, viaPretty)
			}
		})
	}
}

func TestSections(t *testing.T) {
	got, err := Sections(specFragment, RefinedSections)
	if err != nil {
		t.Fatalf("Sections() error = %v", err)
	}

	want := "OS: Android 5.1\nWeight: 150g\nUSB: micro\nAudio: MP3 & AAC"
	if text := Render(got, ModeText); text != want {
		t.Errorf("Render(Sections()) = %q, want %q", text, want)
	}
}

func TestSections_Order(t *testing.T) {
	got, err := Sections(specFragment, []string{"Ports", "general"})
	if err != nil {
		t.Fatalf("Sections() error = %v", err)
	}

	want := "USB: micro\nOS: Android 5.1\nWeight: 150g"
	if text := Render(got, ModeText); text != want {
		t.Errorf("Render(Sections()) = %q, want %q", text, want)
	}
}

func TestSections_Nested(t *testing.T) {
	fragment := `<div class="spec"><section><ul id="general"><li>Deep</li></ul></section></div>`
	got, err := Sections(fragment, []string{"general"})
	if err != nil {
		t.Fatalf("Sections() error = %v", err)
	}
	if text := Render(got, ModeText); text != "Deep" {
		t.Errorf("Render(Sections()) = %q, want %q", text, "Deep")
	}
}

func TestSections_Missing(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		ids    []string
		wantID string
	}{
		{
			name:   "absent id",
			raw:    `<ul id="general"><li>OS: A</li></ul>`,
			ids:    RefinedSections,
			wantID: "Ports",
		},
		{
			name:   "id match is case sensitive",
			raw:    `<ul id="ports"><li>USB</li></ul>`,
			ids:    []string{"Ports"},
			wantID: "Ports",
		},
		{
			name:   "non-string input has no sections",
			raw:    42,
			ids:    []string{"general"},
			wantID: "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sections(tt.raw, tt.ids)
			if err == nil {
				t.Fatalf("Sections() = %q, want error", got)
			}
			if !errors.Is(err, ErrSectionNotFound) {
				t.Errorf("errors.Is(err, ErrSectionNotFound) = false for %v", err)
			}
			var notFound *SectionNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("errors.As(err, *SectionNotFoundError) = false for %v", err)
			}
			if notFound.ID != tt.wantID {
				t.Errorf("missing ID = %q, want %q", notFound.ID, tt.wantID)
			}
		})
	}
}

func TestField(t *testing.T) {
	p := models.Product{ID: 7, Specification: "<p>spec</p>", Price: 9.5}

	raw, err := Field(p, "specification")
	if err != nil {
		t.Fatalf("Field() error = %v", err)
	}
	if Render(raw, ModeText) != "spec" {
		t.Errorf("Render(Field(specification)) = %q, want %q", Render(raw, ModeText), "spec")
	}

	raw, err = Field(p, "id")
	if err != nil {
		t.Fatalf("Field() error = %v", err)
	}
	if Render(raw, ModeText) != "7" {
		t.Errorf("Render(Field(id)) = %q, want %q", Render(raw, ModeText), "7")
	}

	if _, err := Field(p, "colour"); err == nil {
		t.Error("Field(colour) error = nil, want error")
	}
}
