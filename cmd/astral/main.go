// Command astral is the command-line front end to the astral calculation
// packages: time scales, angles, coordinate transforms, Sun/Moon/planet
// ephemerides, and visibility planning.
//
// Usage:
//
//	astral [--verbose] [--output plain|json] [--precision LEVEL] <command> [args]
//
// Commands: time, angles, coords, constants, sun, moon, planets, vis,
// observer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/astral-go/astral/output"
	"github.com/astral-go/astral/precision"
	"github.com/astral-go/astral/verbose"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// app carries the resolved global options into the command handlers.
type app struct {
	fmtr output.Formatter
	rec  *verbose.Recorder
	prec precision.Config
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := flag.NewFlagSet("astral", flag.ContinueOnError)
	root.SetOutput(os.Stderr)
	verboseFlag := root.Bool("verbose", false, "record and display calculation steps")
	outputFlag := root.String("output", "plain", "output format: plain or json")
	precFlag := root.String("precision", "standard", "display precision: compact|display|standard|high|full")
	root.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		root.PrintDefaults()
	}

	if err := root.Parse(args); err != nil {
		return exitUsage
	}
	rest := root.Args()
	if len(rest) == 0 {
		root.Usage()
		return exitUsage
	}

	level, err := precision.ParseLevel(*precFlag)
	if err != nil {
		return fail(err)
	}
	precision.SetLevel(level)

	var rec *verbose.Recorder
	if *verboseFlag {
		rec = verbose.New()
	}

	fmtr, err := output.ForMode(*outputFlag, *verboseFlag)
	if err != nil {
		return fail(err)
	}

	a := &app{fmtr: fmtr, rec: rec, prec: precision.Get()}

	switch rest[0] {
	case "time":
		return a.timeCmd(rest[1:])
	case "angles":
		return a.anglesCmd(rest[1:])
	case "coords":
		return a.coordsCmd(rest[1:])
	case "constants":
		return a.constantsCmd(rest[1:])
	case "sun":
		return a.sunCmd(rest[1:])
	case "moon":
		return a.moonCmd(rest[1:])
	case "planets":
		return a.planetsCmd(rest[1:])
	case "vis":
		return a.visCmd(rest[1:])
	case "observer":
		return a.observerCmd(rest[1:])
	case "help":
		root.Usage()
		return exitOK
	}
	fmt.Fprintf(os.Stderr, "astral: unknown command %q\n", rest[0])
	return exitUsage
}

const usageText = `astral — astronomy calculations for the terminal

Usage:
  astral [global flags] <command> <subcommand> [args]

Commands:
  time       Julian Date, calendar and sidereal time conversions
  angles     angular separations, position angles, unit conversions
  coords     coordinate frame transforms and parsing
  constants  astronomical constants
  sun        solar position, rise/set, twilight, day length
  moon       lunar position, phase, rise/set, next phase
  planets    planetary positions, magnitudes, rise/set
  vis        visibility: altitude, transit, rise/set, airmass
  observer   manage observer profiles

Global flags:
`

// fail prints a one-line error and returns the generic error exit code.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "astral: %v\n", err)
	return exitError
}

// usageFail prints a one-line error and returns the usage exit code.
func usageFail(msg string) int {
	fmt.Fprintf(os.Stderr, "astral: %s\n", msg)
	return exitUsage
}

// print renders a result with the active formatter.
func (a *app) print(res *output.Result) int {
	res.Steps = a.rec
	s, err := a.fmtr.Format(res)
	if err != nil {
		return fail(err)
	}
	fmt.Println(s)
	return exitOK
}
