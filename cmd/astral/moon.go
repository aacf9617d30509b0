package main

import (
	"flag"
	"fmt"

	"github.com/astral-go/astral/moon"
	"github.com/astral-go/astral/output"
)

func (a *app) moonCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral moon {position | phase | rise | set | altitude | next new|first|full|last} [--lat F --lon F | --observer NAME] [--jd F]")
	}

	sub := args[0]
	rest := args[1:]
	var quarter moon.Quarter
	if sub == "next" {
		if len(rest) == 0 {
			return usageFail("usage: astral moon next {new|first|full|last}")
		}
		var err error
		if quarter, err = parseQuarter(rest[0]); err != nil {
			return usageFail(err.Error())
		}
		rest = rest[1:]
	}

	fs := flag.NewFlagSet("moon "+sub, flag.ContinueOnError)
	var loc locationFlags
	loc.register(fs)
	jdFlag := fs.Float64("jd", 0, "Julian Date (default: now)")
	if err := fs.Parse(rest); err != nil {
		return exitUsage
	}
	jd := jdOrNow(*jdFlag, flagWasSet(fs, "jd"))

	switch sub {
	case "position":
		pos := moon.PositionAt(jd, a.rec)
		res := &output.Result{Title: "Moon"}
		res.Add("julian_date", "Julian Date", jd.JD(), "").
			Add("ecliptic_longitude_degrees", "Ecliptic longitude", pos.Longitude.Degrees(), "deg").
			Add("ecliptic_latitude_degrees", "Ecliptic latitude", pos.Latitude.Degrees(), "deg").
			Add("ra_degrees", "RA", pos.RA.Degrees(), "deg").
			Add("dec_degrees", "Dec", pos.Dec.Degrees(), "deg").
			Add("distance_km", "Distance", pos.Distance.Km(), "km").
			Add("angular_diameter_arcmin", "Angular diameter", pos.AngularDiameter.Arcminutes(), "arcmin").
			Add("parallax_degrees", "Horizontal parallax", pos.Parallax.Degrees(), "deg")
		return a.print(res)

	case "phase":
		ph := moon.PhaseAt(jd, a.rec)
		res := &output.Result{Title: fmt.Sprintf("Moon Phase %s", ph.Glyph)}
		res.Add("phase_name", "Phase", ph.Name, "").
			Add("elongation_degrees", "Elongation", ph.Elongation.Degrees(), "deg").
			Add("phase_angle_degrees", "Phase angle", ph.PhaseAngle.Degrees(), "deg").
			Add("illumination", "Illumination", ph.Illumination, "").
			Add("percent_illuminated", "Illuminated", ph.PercentIlluminated(), "%").
			Add("age_days", "Age", ph.AgeDays, "days").
			Add("waxing", "Waxing", ph.Waxing, "")
		return a.print(res)

	case "rise", "set":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		t := moon.Rise(obs, jd)
		title := "Moonrise"
		if sub == "set" {
			t = moon.Set(obs, jd)
			title = "Moonset"
		}
		res := &output.Result{Title: title}
		res.Add("julian_date", "Event JD", maybeJD(t), "").
			Add("utc", "UTC", maybeTime(t), "")
		return a.print(res)

	case "altitude":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		alt := moon.Altitude(obs, jd)
		res := &output.Result{Title: "Lunar Altitude"}
		res.Add("julian_date", "Julian Date", jd.JD(), "").
			Add("altitude_degrees", "Altitude", alt.Degrees(), "deg")
		return a.print(res)

	case "next":
		t, err := moon.NextPhase(jd, quarter)
		if err != nil {
			return fail(err)
		}
		res := &output.Result{Title: fmt.Sprintf("Next %s", quarter)}
		res.Add("phase", "Phase", quarter.String(), "").
			Add("julian_date", "JD", t.JD(), "").
			Add("utc", "UTC", fmtTime(t), "").
			Add("days_away", "Days away", t.Sub(jd), "days")
		return a.print(res)
	}
	return usageFail(fmt.Sprintf("moon: unknown subcommand %q", sub))
}

func parseQuarter(s string) (moon.Quarter, error) {
	switch s {
	case "new":
		return moon.NewMoon, nil
	case "first":
		return moon.FirstQuarter, nil
	case "full":
		return moon.FullMoon, nil
	case "last":
		return moon.LastQuarter, nil
	}
	return 0, fmt.Errorf("moon next: unknown phase %q (use new|first|full|last)", s)
}
