package optreg

import (
	"github.com/pborman/getopt/v2"
)

// ScanError wraps errors returned by the option scanner.
type ScanError struct{ error }

func (e ScanError) Unwrap() error { return e.error }

// Parse scans an argument vector against the declared flags, invoking the
// callback bound to each option it encounters, in occurrence order. args is
// the full vector including the program name, as handed to the process.
// An unfrozen registry is frozen first.
//
// Scanner failures (unrecognized option, missing required argument) are
// returned as ScanError; no callback is invoked for the failing option and
// the registry attaches no diagnostics of its own.
func (r *Registry) Parse(args []string) error {
	if len(args) == 0 {
		panic("attempted to parse zero length argument vector")
	}
	r.Done()
	if err := r.set.Getopt(args, nil); err != nil {
		return ScanError{err}
	}
	return nil
}

// Args returns the positional arguments left over by the most recent Parse,
// or nil on an unfrozen registry.
func (r *Registry) Args() []string {
	if r.set == nil {
		return nil
	}
	return r.set.Args()
}

// dispatch bridges the scanner to the registry: the scanner reports each
// recognized option by calling Set, which routes through the code table to
// the bound callback.
type dispatch struct {
	r    *Registry
	code int
}

func (d *dispatch) Set(value string, _ getopt.Option) error {
	if f := d.r.byCode[d.code]; f.Metavar == "" {
		f.Call("")
	} else {
		f.Call(value)
	}
	return nil
}

func (d *dispatch) String() string { return "" }
