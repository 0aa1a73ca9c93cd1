package matrix

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/freecam/pkg/math"
)

// Format renders m as four rows (row-major reading of the column-major
// data, as a matrix is written on paper) under a banner such as
// "==[3D Model View]========". Values are truncated to decimals places.
func Format(title string, m mgl64.Mat4, decimals int) string {
	cells := make([]string, 16)
	width := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s := math.FormatDecimals(m.At(row, col), decimals)
			if !strings.HasPrefix(s, "-") {
				s = " " + s
			}
			cells[row*4+col] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	lines := make([]string, 4)
	for row := 0; row < 4; row++ {
		var b strings.Builder
		b.WriteString("[")
		for col := 0; col < 4; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			s := cells[row*4+col]
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", width-len(s)))
		}
		b.WriteString("]")
		lines[row] = b.String()
	}

	banner := "==[" + title + "]"
	if pad := len(lines[0]) - len(banner); pad > 0 {
		banner += strings.Repeat("=", pad)
	}

	return banner + "\n" + strings.Join(lines, "\n")
}
