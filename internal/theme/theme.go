// Package theme holds the shipped clock palettes. A palette names four
// colors: one per hand plus the clock face and its rim ticks. Palettes are
// resolved once at startup and immutable for the process lifetime.
package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is a named 4-color palette.
type Theme struct {
	Name   string
	Hour   colorful.Color
	Minute colorful.Color
	Second colorful.Color
	Face   colorful.Color
}

// Nord themes after https://www.nordtheme.com/, as in the palettes this
// project started from; the rest follow the same dark-terminal aesthetic.
var themes = []Theme{
	{
		Name:   "nord-frost",
		Hour:   mustHex("#5E81AC"),
		Minute: mustHex("#81A1C1"),
		Second: mustHex("#88C0D0"),
		Face:   mustHex("#8FBCBB"),
	},
	{
		Name:   "nord-aurora",
		Hour:   mustHex("#BF616A"),
		Minute: mustHex("#D08770"),
		Second: mustHex("#EBCB8B"),
		Face:   mustHex("#B48EAD"),
	},
	{
		Name:   "gruvbox",
		Hour:   mustHex("#FB4934"),
		Minute: mustHex("#FABD2F"),
		Second: mustHex("#B8BB26"),
		Face:   mustHex("#EBDBB2"),
	},
	{
		Name:   "dracula",
		Hour:   mustHex("#FF79C6"),
		Minute: mustHex("#BD93F9"),
		Second: mustHex("#50FA7B"),
		Face:   mustHex("#F8F8F2"),
	},
	{
		Name:   "solarized",
		Hour:   mustHex("#268BD2"),
		Minute: mustHex("#2AA198"),
		Second: mustHex("#CB4B16"),
		Face:   mustHex("#839496"),
	},
	{
		Name:   "catppuccin-mocha",
		Hour:   mustHex("#F38BA8"),
		Minute: mustHex("#FAB387"),
		Second: mustHex("#A6E3A1"),
		Face:   mustHex("#CDD6F4"),
	},
}

// Lookup resolves a palette by name. An unknown name is a configuration
// error; the message lists the valid names so the user can fix the flag.
func Lookup(name string) (Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("no theme named %q (available: %s)", name, strings.Join(Names(), ", "))
}

// All returns the shipped palettes in listing order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Names returns the shipped palette names in listing order.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad hex color %q: %v", s, err))
	}
	return c
}
