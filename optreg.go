// Package optreg implements getopt-style option registration and dispatch.
//
// A Registry correlates the long and short forms of command-line options and
// binds each to a callback. Declarations chain through Add and AddFlag, Parse
// scans an argument vector invoking the callback bound to each option it
// encounters, and Dump renders an aligned listing of the declared options.
package optreg

import (
	"github.com/pborman/getopt/v2"
)

// LongOnly declares an option with no short form.
const LongOnly = 0

// A Flag describes one declared option.
type Flag struct {
	// Name is the long form, without the leading dashes.
	Name string
	// Code identifies the flag during dispatch. It is the ordinal of the
	// short rune when one was given, or a unique negative value allocated
	// by the registry for long-only flags.
	Code int
	// Metavar names the argument in help output; a flag with a zero length
	// Metavar takes no argument.
	Metavar string
	// Help is the description shown by Dump.
	Help string
	// Call receives the argument text, or the empty string for flags
	// taking no argument.
	Call func(string)
}

// Registry holds a set of declared options and their derived scanner state.
// Populate it with Add and AddFlag, then freeze it with Done or implicitly
// through Parse; a frozen registry is read-only.
type Registry struct {
	flags  []*Flag
	byCode map[int]*Flag

	// scanner state derived from flags, nil until frozen
	set *getopt.Set

	// count of long-only flags, drives synthetic code allocation
	longOnly int
}

// New initialises an empty Registry.
func New() *Registry { return new(Registry) }

// Add appends a flag with long form name and short form short, or no short
// form if short is LongOnly. A flag with a non-empty metavar takes an
// argument, passed as text to cb on every occurrence; a flag without one
// takes no argument and cb receives the empty string. Returns the registry
// for chaining.
//
// Add panics when called on a frozen registry, and when name, short or cb
// is invalid or collides with an earlier registration.
func (r *Registry) Add(name string, short rune, metavar, help string, cb func(string)) *Registry {
	if r.set != nil {
		panic("attempted to add flag to frozen registry")
	}
	if name == "" {
		panic("attempted to add flag with zero length name")
	}
	if short < 0 {
		panic("attempted to add flag with negative short form")
	}
	if cb == nil {
		panic("invalid callback")
	}

	code := int(short)
	if short == LongOnly {
		// codes for long-only flags descend from -2, keeping them
		// disjoint from short runes and from scanner sentinels
		code = -2 - r.longOnly
		r.longOnly++
	}
	if _, ok := r.byCode[code]; ok {
		panic("attempted to add flag with non-unique short form")
	}
	for _, f := range r.flags {
		if f.Name == name {
			panic("attempted to add flag with non-unique name")
		}
	}

	if r.byCode == nil {
		r.byCode = make(map[int]*Flag)
	}
	f := &Flag{Name: name, Code: code, Metavar: metavar, Help: help, Call: cb}
	r.flags = append(r.flags, f)
	r.byCode[code] = f
	return r
}

// AddFlag is Add for flags taking no argument: f is invoked on every
// occurrence with the argument text discarded.
func (r *Registry) AddFlag(name string, short rune, help string, f func()) *Registry {
	if f == nil {
		panic("invalid callback")
	}
	return r.Add(name, short, "", help, func(string) { f() })
}

// Done freezes the registry: the scanner option set is derived from the
// declared flags exactly once and further Add calls panic. Calling Done on
// a frozen registry is a no-op. Returns the registry for chaining into
// Parse.
func (r *Registry) Done() *Registry {
	if r.set != nil {
		return r
	}

	set := getopt.New()
	for _, f := range r.flags {
		var short rune
		if f.Code > 0 {
			short = rune(f.Code)
		}
		if f.Metavar == "" {
			set.FlagLong(&dispatch{r, f.Code}, f.Name, short, f.Help).SetFlag()
		} else {
			set.FlagLong(&dispatch{r, f.Code}, f.Name, short, f.Help, f.Metavar)
		}
	}
	r.set = set
	return r
}

// Flags returns the declared flags in registration order. The caller must
// not mutate the returned descriptors.
func (r *Registry) Flags() []*Flag { return r.flags }
