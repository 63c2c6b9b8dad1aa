package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal, or prints it as is if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logger.Debug("cannot create markdown renderer", "err", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("cannot render markdown", "err", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
