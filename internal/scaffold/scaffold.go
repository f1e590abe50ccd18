package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"sort"
	"text/template"

	"github.com/narigama/gen-features/internal/features"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Scaffold kinds.
const (
	KindMod   = "mod"
	KindBench = "bench"
)

var templateFiles = map[string]string{
	KindMod:   "templates/mod.rs.tmpl",
	KindBench: "templates/bench.rs.tmpl",
}

// Data holds all template variables available to scaffold templates.
type Data struct {
	Year       string // verbatim year token, e.g. "2022"
	YearModule string // Derived: y<year>
	Crate      string // Rust crate path for `use` lines, e.g. "narigama_aoc"
	Days       []Day
}

// Day is one puzzle day as seen by the templates.
type Day struct {
	Number int    // 1..25
	Label  string // e.g. "y2022d01"
	Module string // e.g. "d01"
}

// NewData creates Data with the derived fields populated.
func NewData(year, crate string) *Data {
	d := &Data{
		Year:       year,
		YearModule: "y" + year,
		Crate:      crate,
	}
	for _, n := range features.Days() {
		d.Days = append(d.Days, Day{
			Number: n,
			Label:  features.Label(year, n),
			Module: fmt.Sprintf("d%02d", n),
		})
	}
	return d
}

// Kinds returns the available scaffold kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(templateFiles))
	for k := range templateFiles {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Render executes the template for kind with data and writes the result to w.
// Nothing is written if the template fails.
func Render(w io.Writer, kind string, data *Data) error {
	path, ok := templateFiles[kind]
	if !ok {
		return fmt.Errorf("unknown scaffold kind %q (want one of %v)", kind, Kinds())
	}

	tmplBytes, err := templateFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.New(kind).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", path, err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s scaffold: %w", kind, err)
	}
	return nil
}
