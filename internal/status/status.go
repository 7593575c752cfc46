// Package status projects a classified migration set into a
// human-facing list. Rendering (table formatting, colour) stays in
// the CLI layer; this package only decides what to show.
package status

import "github.com/channdev/drift/internal/reconcile"

// Row is one line of a status report.
type Row struct {
	Name       string
	Kind       reconcile.Kind
	Reversible bool
}

// Report projects sorted matches into rows in the same order.
func Report(matches []reconcile.Matching) []Row {
	rows := make([]Row, len(matches))
	for i, m := range matches {
		rows[i] = Row{
			Name:       m.Name(),
			Kind:       m.Kind,
			Reversible: m.IsReversible(),
		}
	}
	return rows
}
