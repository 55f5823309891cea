package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-uidl/config"
	"github.com/vcrobe/nojs-uidl/logging"
)

type rootOptions struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "uidl-render",
		Short: "Render label update records to HTML",
		Long: `uidl-render reads a label update record in its XML or JSON wire form,
draws it the way the browser client would, and prints the resulting HTML.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			verbosity := cfg.Log.Verbosity
			if cmd.Flags().Changed("verbose") {
				verbosity = opts.verbosity
			}
			logging.SetupLoggerTo(cmd.ErrOrStderr(), verbosity, true)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file (defaults and NOJS_* env vars apply without it)")

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newModesCmd())
	return cmd
}
