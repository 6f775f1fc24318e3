// Package output creates termenv outputs that honor NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

func noColor() bool { return os.Getenv("NO_COLOR") != "" }

// ColorProfile is the profile for interactive terminals: whatever the
// environment advertises, or Ascii under NO_COLOR.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI limits colors to the 16 ANSI ones that CI log viewers render.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New is NewWithProfile with ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile builds an output on w, or on stderr when w is nil. The
// profile is fixed at construction and TTY detection is bypassed, so piped
// output stays colored unless the profile says otherwise.
func NewWithProfile(w io.Writer, profile func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	forced := []termenv.OutputOption{termenv.WithProfile(profile()), termenv.WithTTY(true)}
	return termenv.NewOutput(w, append(opts, forced...)...)
}
