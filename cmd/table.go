package cmd

import "github.com/pterm/pterm"

// PrintTableNoPad renders a table without left padding so output lines up
// with the surrounding messages.
func PrintTableNoPad(data pterm.TableData, hasHeader bool) {
	t := pterm.DefaultTable.WithData(data)
	if hasHeader {
		t = t.WithHasHeader()
	}
	_ = t.Render()
}
