package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelqty/internal/config"
	"github.com/alexiusacademia/steelqty/internal/logger"
	"github.com/alexiusacademia/steelqty/internal/version"
)

var (
	cfgFile string

	// v collects defaults, the config file, STEELQTY_* variables and the
	// persistent flags bound below.
	v = config.New()

	// appConfig is loaded before any subcommand runs.
	appConfig = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "steelqty",
	Short: "Steel profile quantity formulas",
	Long: `steelqty - Steel section quantity take-off

Turns steel profile text such as HW200*200, 2L100*120*4 or
2PL14*400*500-PLO14*250 into spreadsheet formulas for the painted
surface area (m²/m) and weight (kg/m) of the member, plus the plate
that fits inside it as a stiffener.

Supported families:
  H, HH, T, I, channels ([, 2[, [], ][), angles (L, 2L),
  cold-formed hollow (J, Y, YE, YS), round bar and pipe (D, PIPE),
  welded box (B), lipped C and Z, plates (PL, PLT, PLO/PLD),
  composite plates and spheres (SPH).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return logger.Initialize(logger.Options{
			JSON:  cfg.Log.JSON,
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   steelqty v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Steel Section Quantity Formulas                         ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Area and weight formulas at three accuracy levels")
		fmt.Fprintln(out, "    • GB reference tables for H, I, channel and angle sections")
		fmt.Fprintln(out, "    • Stiffener plate sizes for open and hollow sections")
		fmt.Fprintln(out, "    • CSV batch filling and section outline drawings")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'steelqty --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./steelqty.toml, then ~/.steelqty/config.toml)")
	pf.StringP("accuracy", "a", "roughly", "Formula accuracy: roughly, precisely or gbdata")
	pf.String("pi", "func", "How π is written: func (PI()) or num (3.14)")
	pf.Float64("density", 7850, "Steel density (kg/m³)")
	pf.Int("round", -1, "Wrap formulas in ROUND(expr,n); -1 disables")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.Bool("log-json", false, "Log as JSON")

	bind("formula.accuracy", "accuracy")
	bind("formula.pi_style", "pi")
	bind("formula.density", "density")
	bind("formula.round_digits", "round")
	bind("log.level", "log-level")
	bind("log.json", "log-json")
}

// bind ties a persistent flag to a config key so an explicit flag wins over
// the file and the environment.
func bind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}
