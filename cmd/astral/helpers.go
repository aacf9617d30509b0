package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/timescale"
)

// jdOrNow resolves an optional --jd flag value to a JulianDate, defaulting
// to the current instant.
func jdOrNow(jdFlag float64, set bool) timescale.JulianDate {
	if set {
		return timescale.New(jdFlag)
	}
	return timescale.Now()
}

// flagWasSet reports whether a flag was explicitly provided.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	seen := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			seen = true
		}
	})
	return seen
}

// locationFlags registers the shared observer-location flags on a command's
// flag set.
type locationFlags struct {
	lat, lon float64
	profile  string
}

func (l *locationFlags) register(fs *flag.FlagSet) {
	fs.Float64Var(&l.lat, "lat", 0, "observer latitude, degrees (+N)")
	fs.Float64Var(&l.lon, "lon", 0, "observer longitude, degrees (+E)")
	fs.StringVar(&l.profile, "observer", "", "named observer profile (default profile if empty name stored)")
}

// resolve builds an Observer from --observer, --lat/--lon, or the stored
// default profile. Missing location arguments are a usage error, matching
// the horizontal-conversion contract.
func (l *locationFlags) resolve(fs *flag.FlagSet) (observer.Observer, error) {
	latSet, lonSet := flagWasSet(fs, "lat"), flagWasSet(fs, "lon")
	if l.profile != "" {
		return loadProfile(l.profile)
	}
	if latSet && lonSet {
		return observer.FromDegrees("cli", l.lat, l.lon, 0, "")
	}
	if latSet || lonSet {
		return observer.Observer{}, fmt.Errorf("both --lat and --lon are required")
	}
	if obs, err := loadProfile(""); err == nil {
		return obs, nil
	}
	return observer.Observer{}, fmt.Errorf("location required: pass --lat/--lon or --observer NAME")
}

// loadProfile resolves a named profile (or the default for "") from the
// per-user store.
func loadProfile(name string) (observer.Observer, error) {
	path, err := observer.ConfigPath()
	if err != nil {
		return observer.Observer{}, err
	}
	profiles, err := observer.Load(path)
	if err != nil {
		return observer.Observer{}, err
	}
	return profiles.Get(name)
}

// parseFloatArg parses a positional float argument.
func parseFloatArg(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return v, nil
}

// fmtTime renders a Julian Date as a calendar timestamp.
func fmtTime(jd timescale.JulianDate) string {
	return jd.Time().Format("2006-01-02 15:04:05") + " UTC"
}

// maybeTime renders an optional event time, with a dash for absent events.
func maybeTime(jd *timescale.JulianDate) string {
	if jd == nil {
		return "—"
	}
	return fmtTime(*jd)
}

// maybeJD converts an optional event time for JSON output: nil stays null.
func maybeJD(jd *timescale.JulianDate) interface{} {
	if jd == nil {
		return nil
	}
	return jd.JD()
}
