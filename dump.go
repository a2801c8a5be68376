package optreg

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Dump writes one line per declared flag to w, in registration order: the
// short form if any, the long form, the metavar for flags taking an
// argument, and the help text, column-aligned. Returns w for composition
// by the caller; write failures are not handled.
func (r *Registry) Dump(w io.Writer) io.Writer {
	tw := tabwriter.NewWriter(w, 0, 1, 4, ' ', 0)
	for _, f := range r.flags {
		var short string
		if f.Code > 0 {
			short = "-" + string(rune(f.Code)) + ","
		}
		name := "--" + f.Name
		if f.Metavar != "" {
			name += " <" + f.Metavar + ">"
		}
		_, _ = fmt.Fprintf(tw, "    %s\t%s\t%s\n", short, name, f.Help)
	}
	_ = tw.Flush()
	return w
}
