package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-uidl/label"
)

var modeDescriptions = map[label.Mode]string{
	label.ModeText:  "first child shown as literal text (also used when mode is absent)",
	label.ModePre:   "nested string shown verbatim inside <pre>",
	label.ModeUIDL:  "all children serialized as markup",
	label.ModeXHTML: "doubly nested content node installed as markup, images watched",
	label.ModeXML:   "nested string installed as markup",
	label.ModeRaw:   "nested string installed as markup, images watched",
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the label content modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, m := range label.Modes() {
				if _, err := fmt.Fprintf(out, "%-6s %s\n", m, modeDescriptions[m]); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(out, "%-6s %s\n", "other", "label cleared")
			return err
		},
	}
}
