package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBAPalette is a Palette with every entry parsed.
type RGBAPalette struct {
	Empty   color.RGBA
	Floor   color.RGBA
	Wall    color.RGBA
	Box     color.RGBA
	Target  color.RGBA
	Player  color.RGBA
	Outline color.RGBA
}

// Resolve parses every hex entry of the palette.
func (p Palette) Resolve() (RGBAPalette, error) {
	var out RGBAPalette
	entries := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"empty", p.Empty, &out.Empty},
		{"floor", p.Floor, &out.Floor},
		{"wall", p.Wall, &out.Wall},
		{"box", p.Box, &out.Box},
		{"target", p.Target, &out.Target},
		{"player", p.Player, &out.Player},
		{"outline", p.Outline, &out.Outline},
	}
	for _, e := range entries {
		c, err := ParseHex(e.hex)
		if err != nil {
			return RGBAPalette{}, fmt.Errorf("config: palette %s: %w", e.name, err)
		}
		*e.dst = c
	}
	return out, nil
}

// ParseHex converts "#rrggbb" into an opaque RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
