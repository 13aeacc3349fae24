package report

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/josephlewis42/hostreport/core/vos"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// ColorPrinter colors text only when the output is a terminal.
type ColorPrinter struct {
	enabled bool
}

// NewColorPrinter creates a printer that colors if the host's stdout is a
// terminal.
func NewColorPrinter(host vos.VHost) ColorPrinter {
	return ColorPrinter{enabled: host.IsTerminal()}
}

// Sprintf formats like fmt.Sprintf and wraps the result in col when coloring
// is enabled.
func (c ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if !c.enabled {
		return fmt.Sprintf(format, a...)
	}

	// The package level NoColor is derived from os.Stdout which may not be
	// where the report is going.
	forced := *col
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}
