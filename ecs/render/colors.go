package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var colors = map[string]color.Color{}

// RegisterColor stores a colour under key, shadowing any named colour.
func RegisterColor(key string, c color.Color) {
	if key == "" || c == nil {
		return
	}
	colors[strings.ToLower(key)] = c
}

// Color resolves a registered name, a CSS colour name or a #RGB / #RRGGBB hex
// string. Unknown names resolve to white.
func Color(name string) color.Color {
	c, err := ParseColor(name)
	if err != nil {
		return color.White
	}
	return c
}

func ParseColor(name string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("render: empty colour")
	}
	if c, ok := colors[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") {
		return parseHex(key[1:])
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("render: unknown colour %q", name)
}

func parseHex(s string) (color.Color, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("render: bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("render: bad hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
