// Package colors parses the hex color notation accepted by the tools.
package colors

import (
	"strconv"
	"strings"

	"pptmcp/server/internal/toolworker"
)

type RGB = toolworker.RGB

// Parse accepts "#RRGGBB" or "RRGGBB". Anything else, including the short
// "#RGB" form, reports false.
func Parse(value string) (RGB, bool) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, true
}

// Hex formats c as "#RRGGBB".
func Hex(c RGB) string {
	const digits = "0123456789ABCDEF"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		out[1+i*2] = digits[v>>4]
		out[2+i*2] = digits[v&0x0f]
	}
	return string(out)
}
