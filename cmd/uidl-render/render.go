package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-uidl/dom"
	"github.com/vcrobe/nojs-uidl/label"
	"github.com/vcrobe/nojs-uidl/logging"
	"github.com/vcrobe/nojs-uidl/runtime"
	"github.com/vcrobe/nojs-uidl/uidl"
)

type renderOptions struct {
	format       string
	outer        bool
	simulateLoad bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render one update record",
		Long: `Render reads an update record from file, or from stdin when file is "-"
or omitted, and prints the label's content as HTML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			u, err := decode(data, opts.format)
			if err != nil {
				return err
			}
			return runRender(cmd, root, opts, u)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "auto", "Input format: auto, xml or json")
	cmd.Flags().BoolVar(&opts.outer, "outer", false, "Include the label element itself in the output")
	cmd.Flags().BoolVar(&opts.simulateLoad, "simulate-load", false, "Fire load events for embedded images after rendering")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// decode picks the wire format from the first non-space byte when format is auto.
func decode(data []byte, format string) (*uidl.Node, error) {
	if format == "auto" {
		trimmed := bytes.TrimSpace(data)
		switch {
		case bytes.HasPrefix(trimmed, []byte("<")):
			format = "xml"
		case bytes.HasPrefix(trimmed, []byte("[")):
			format = "json"
		default:
			return nil, errors.New("cannot detect input format; use --format")
		}
	}

	switch format {
	case "xml":
		return uidl.ParseXML(string(data))
	case "json":
		return uidl.ParseJSON(data)
	default:
		return nil, fmt.Errorf("unknown format %q (want auto, xml or json)", format)
	}
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, u *uidl.Node) error {
	cfg := root.cfg
	policy, err := runtime.ParsePolicy(cfg.Update.Policy)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("uidl-render")
	target := dom.NewElement(cfg.Mount.Tag, cfg.Mount.Class)
	lbl := label.New(target,
		label.WithLogger(logging.GetLogger("label")),
		label.WithImagesLoaded(func() {
			logger.Info().Msg("All embedded images loaded")
		}),
	)

	dispatcher := runtime.NewDispatcher(policy, logging.GetLogger("dispatcher"))
	dispatcher.Register(u.ID(), lbl)

	report, err := dispatcher.Update(u)
	if err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d component update(s) failed", report.Failed)
	}

	if group := lbl.PendingImages(); group != nil {
		logger.Info().Int("images", group.Total()).Msg("Watching embedded images")
		if opts.simulateLoad {
			target.FireImageLoads()
		}
	}

	out := target.HTML()
	if opts.outer {
		out = target.OuterHTML()
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
