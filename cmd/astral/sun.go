package main

import (
	"flag"
	"fmt"

	"github.com/astral-go/astral/output"
	"github.com/astral-go/astral/sun"
)

func (a *app) sunCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral sun {position | rise | set | twilight | altitude} [--lat F --lon F | --observer NAME] [--jd F]")
	}

	fs := flag.NewFlagSet("sun "+args[0], flag.ContinueOnError)
	var loc locationFlags
	loc.register(fs)
	jdFlag := fs.Float64("jd", 0, "Julian Date (default: now)")
	kind := fs.String("kind", "civil", "twilight kind: civil|nautical|astronomical")
	if err := fs.Parse(args[1:]); err != nil {
		return exitUsage
	}
	jd := jdOrNow(*jdFlag, flagWasSet(fs, "jd"))

	switch args[0] {
	case "position":
		pos := sun.PositionAt(jd, a.rec)
		res := &output.Result{Title: "Sun"}
		res.Add("julian_date", "Julian Date", jd.JD(), "").
			Add("ecliptic_longitude_degrees", "Ecliptic longitude", pos.Longitude.Degrees(), "deg").
			Add("ra_degrees", "RA", pos.RA.Degrees(), "deg").
			Add("dec_degrees", "Dec", pos.Dec.Degrees(), "deg").
			Add("ra_hms", "RA (HMS)", pos.RA.FormatHMS(a.prec.TimeSeconds, true), "").
			Add("dec_dms", "Dec (DMS)", pos.Dec.FormatDMS(a.prec.AngleArcsec, true), "").
			Add("distance_au", "Distance", pos.Distance.AU(), "AU").
			Add("equation_of_time_min", "Equation of time", pos.EquationOfTime, "min")
		return a.print(res)

	case "rise", "set":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		var t = sun.Rise(obs, jd)
		title := "Sunrise"
		if args[0] == "set" {
			t = sun.Set(obs, jd)
			title = "Sunset"
		}
		res := &output.Result{Title: title}
		res.Add("julian_date", "Event JD", maybeJD(t), "").
			Add("utc", "UTC", maybeTime(t), "").
			Add("day_length_hours", "Day length", sun.DayLength(obs, jd), "hours")
		return a.print(res)

	case "twilight":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		tk, err := parseTwilightKind(*kind)
		if err != nil {
			return usageFail(err.Error())
		}
		morning, evening := sun.Twilight(obs, jd, tk)
		res := &output.Result{Title: fmt.Sprintf("%s twilight", tk)}
		res.Add("morning_jd", "Morning", maybeJD(morning), "").
			Add("morning_utc", "Morning UTC", maybeTime(morning), "").
			Add("evening_jd", "Evening", maybeJD(evening), "").
			Add("evening_utc", "Evening UTC", maybeTime(evening), "")
		return a.print(res)

	case "altitude":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		alt := sun.Altitude(obs, jd)
		res := &output.Result{Title: "Solar Altitude"}
		res.Add("julian_date", "Julian Date", jd.JD(), "").
			Add("altitude_degrees", "Altitude", alt.Degrees(), "deg")
		return a.print(res)
	}
	return usageFail(fmt.Sprintf("sun: unknown subcommand %q", args[0]))
}

func parseTwilightKind(s string) (sun.TwilightKind, error) {
	switch s {
	case "civil":
		return sun.Civil, nil
	case "nautical":
		return sun.Nautical, nil
	case "astronomical":
		return sun.Astronomical, nil
	}
	return 0, fmt.Errorf("sun twilight: unknown kind %q", s)
}
