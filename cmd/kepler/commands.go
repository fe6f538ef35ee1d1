package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/danvip10/tudat"
	"github.com/danvip10/tudat/ephemeris"
	"github.com/danvip10/tudat/parsed"
	"github.com/spf13/cobra"
)

const (
	day        = 86400.
	dateFormat = "2006-01-02 15:04:05"
)

func newPeriodCmd() *cobra.Command {
	var a, e, gm, mass float64
	var body string
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Two-body relations of an orbit",
		RunE: func(cmd *cobra.Command, args []string) error {
			var origin tudat.CelestialObject
			if cmd.Flags().Changed("gm") {
				origin = tudat.NewCelestialObject("custom", 0, -1, gm)
			} else {
				var err error
				if origin, err = tudat.CelestialObjectFromString(body); err != nil {
					return err
				}
			}
			o := tudat.NewTwoBody(a, e, mass, origin)
			if verbose {
				logger.Log("level", "debug", "subsys", "astro", "orbit", o)
			}
			return printRelations(cmd.OutOrStdout(), *o)
		},
	}
	cmd.Flags().Float64Var(&a, "sma", 0, "semi major axis (m)")
	cmd.Flags().Float64Var(&e, "ecc", 0, "eccentricity")
	cmd.Flags().Float64Var(&gm, "gm", 0, "gravitational parameter of the central body (m^3/s^2), overrides --body")
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass of the orbiting body (kg)")
	cmd.Flags().StringVar(&body, "body", "earth", "central body")
	_ = cmd.MarkFlagRequired("sma")
	return cmd
}

func printRelations(w io.Writer, o tudat.TwoBody) error {
	if o.PeriodFitsDuration() {
		if _, err := fmt.Fprintf(w, "period=%f s (%s)\n", o.PeriodSeconds(), o.Period()); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "period=%f s (%.2f days)\n", o.PeriodSeconds(), o.PeriodSeconds()/day); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "mean motion=%e rad/s\nenergy=%e J\nangular momentum=%e kg m^2/s\nperiapsis=%f m\napoapsis=%f m\n",
		o.MeanMotion(), o.Energy(), o.AngularMomentum(), o.Periapsis(), o.Apoapsis())
	return err
}

func newBodyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "body <name>",
		Short: "Heliocentric period of a celestial object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := tudat.CelestialObjectFromString(args[0])
			if err != nil {
				return err
			}
			period := obj.HelioPeriod()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: period=%f s (%.2f days) mass=%e kg\n", obj.Name, period, period/day, obj.Mass())
			return err
		},
	}
}

// periodFromArg returns the period in seconds of either a celestial object or a number of seconds.
func periodFromArg(arg string) (float64, error) {
	if val, err := strconv.ParseFloat(arg, 64); err == nil {
		return val, nil
	}
	obj, err := tudat.CelestialObjectFromString(arg)
	if err != nil {
		return 0, fmt.Errorf("`%s` is neither a period nor a body: %w", arg, err)
	}
	return obj.HelioPeriod(), nil
}

func newSynodicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "synodic <body|seconds> <body|seconds>",
		Short: "Synodic period of two bodies",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t1, err := periodFromArg(args[0])
			if err != nil {
				return err
			}
			t2, err := periodFromArg(args[1])
			if err != nil {
				return err
			}
			if t1 == t2 {
				logger.Log("level", "warning", "subsys", "astro", "message", "equal periods, synodic period is infinite")
			}
			synodic := tudat.SynodicPeriod(t1, t2)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "synodic period=%f s (%.2f days)\n", synodic, synodic/day)
			return err
		},
	}
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract the Cartesian states of a state file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return extractStates(f, cmd.OutOrStdout(), conf)
		},
	}
	cmd.Flags().Bool("collect-all", false, "report every missing field of a record")
	cmd.Flags().Bool("skip-invalid", false, "skip records which cannot be extracted")
	return cmd
}

func extractStates(r io.Reader, w io.Writer, conf tudat.Config) error {
	lines, err := parsed.NewLineParser(conf.Columns...).Parse(r)
	if err != nil {
		return err
	}
	batch := ephemeris.NewBatch(ephemeris.CartesianStateExtractor{CollectAll: conf.CollectAll}, conf.SkipInvalid, logger)
	return batch.ExtractEach(ephemeris.Records(lines), func(recNo int, state *ephemeris.CartesianState) error {
		epoch := "-"
		if lines[recNo].Has(parsed.Epoch) {
			dt, err := lines[recNo].Time(parsed.Epoch)
			if err != nil {
				return fmt.Errorf("record %d: %w", recNo, err)
			}
			epoch = dt.Round(time.Second).Format(dateFormat)
		}
		_, err := fmt.Fprintf(w, "%s\t%s\tr=%f v=%f\n", epoch, state, state.RadiusNorm(), state.SpeedNorm())
		return err
	})
}
