package main

import (
	"fmt"
	"os"

	"github.com/danvip10/tudat"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
)

// This command evaluates two-body relations and extracts Cartesian states from state files.

var (
	cfgDir  string
	verbose bool
	conf    = tudat.DefaultConfig()
	logger  = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kepler",
		Short:         "Two-body Kepler relations and Cartesian state extraction",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&cfgDir, "config", "", "directory of conf.toml (defaults to $"+tudat.ConfigEnv+")")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
	root.AddCommand(newPeriodCmd(), newBodyCmd(), newSynodicCmd(), newExtractCmd())
	return root
}

func loadConfig(cmd *cobra.Command) error {
	v, err := tudat.ReadConfigFile(cfgDir)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("collect-all"); f != nil && f.Changed {
		if err := v.BindPFlag("extract.collect_all", f); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("skip-invalid"); f != nil && f.Changed {
		if err := v.BindPFlag("extract.skip_invalid", f); err != nil {
			return err
		}
	}
	if conf, err = tudat.ConfigFromViper(v); err != nil {
		return err
	}
	if conf.LogLevel == "debug" {
		verbose = true
	}
	if verbose {
		logger.Log("level", "debug", "subsys", "conf", "dir", cfgDir, "collect_all", conf.CollectAll, "skip_invalid", conf.SkipInvalid, "columns", fmt.Sprintf("%v", conf.Columns))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Log("level", "critical", "err", err)
		os.Exit(1)
	}
}
