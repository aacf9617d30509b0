package main

import (
	"flag"
	"fmt"

	"github.com/astral-go/astral/output"
	"github.com/astral-go/astral/planets"
)

func (a *app) planetsCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral planets {position NAME | all | riseset NAME | transit NAME | altitude NAME} [--lat F --lon F | --observer NAME] [--jd F]")
	}

	sub := args[0]
	rest := args[1:]
	var planet planets.Planet
	needName := sub != "all"
	if needName {
		if len(rest) == 0 {
			return usageFail(fmt.Sprintf("usage: astral planets %s NAME", sub))
		}
		var err error
		if planet, err = planets.ParsePlanet(rest[0]); err != nil {
			return fail(err)
		}
		rest = rest[1:]
	}

	fs := flag.NewFlagSet("planets "+sub, flag.ContinueOnError)
	var loc locationFlags
	loc.register(fs)
	jdFlag := fs.Float64("jd", 0, "Julian Date (default: now)")
	if err := fs.Parse(rest); err != nil {
		return exitUsage
	}
	jd := jdOrNow(*jdFlag, flagWasSet(fs, "jd"))

	switch sub {
	case "position":
		pos, err := planets.PositionAt(planet, jd, a.rec)
		if err != nil {
			return fail(err)
		}
		res := &output.Result{Title: fmt.Sprintf("%s %s", planet, planet.Symbol())}
		res.Add("planet", "Planet", planet.String(), "").
			Add("julian_date", "Julian Date", jd.JD(), "").
			Add("ra_degrees", "RA", pos.RA.Degrees(), "deg").
			Add("dec_degrees", "Dec", pos.Dec.Degrees(), "deg").
			Add("ra_hms", "RA (HMS)", pos.RA.FormatHMS(a.prec.TimeSeconds, true), "").
			Add("dec_dms", "Dec (DMS)", pos.Dec.FormatDMS(a.prec.AngleArcsec, true), "").
			Add("distance_au", "Distance", pos.Distance.AU(), "AU").
			Add("helio_distance_au", "Heliocentric distance", pos.HelioDistance, "AU").
			Add("helio_longitude_degrees", "Heliocentric longitude", pos.HelioLongitude.Degrees(), "deg").
			Add("magnitude", "Magnitude", pos.Magnitude, "mag").
			Add("elongation_degrees", "Elongation", pos.Elongation.Degrees(), "deg").
			Add("phase_angle_degrees", "Phase angle", pos.PhaseAngle.Degrees(), "deg").
			Add("illumination", "Illumination", pos.Illumination, "").
			Add("angular_diameter_arcsec", "Angular diameter", pos.AngularDiameter.Arcseconds(), "arcsec")
		return a.print(res)

	case "all":
		all, err := planets.AllPositions(jd)
		if err != nil {
			return fail(err)
		}
		res := &output.Result{Title: "Planets"}
		res.Add("julian_date", "Julian Date", jd.JD(), "")
		for _, p := range planets.All {
			pos := all[p]
			res.Add(keyify(p.String()), fmt.Sprintf("%s %s", p, p.Symbol()),
				fmt.Sprintf("RA %7.3f°  Dec %+7.3f°  Δ %7.3f AU  V %+5.2f",
					pos.RA.Degrees(), pos.Dec.Degrees(), pos.Distance.AU(), pos.Magnitude), "")
		}
		return a.print(res)

	case "riseset":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		rise, set, err := planets.RiseSet(planet, obs, jd)
		if err != nil {
			return fail(err)
		}
		res := &output.Result{Title: fmt.Sprintf("%s rise/set", planet)}
		res.Add("planet", "Planet", planet.String(), "").
			Add("rise_jd", "Rise JD", maybeJD(rise), "").
			Add("rise_utc", "Rise UTC", maybeTime(rise), "").
			Add("set_jd", "Set JD", maybeJD(set), "").
			Add("set_utc", "Set UTC", maybeTime(set), "")
		return a.print(res)

	case "transit":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		t, err := planets.Transit(planet, obs, jd)
		if err != nil {
			return fail(err)
		}
		res := &output.Result{Title: fmt.Sprintf("%s transit", planet)}
		res.Add("planet", "Planet", planet.String(), "").
			Add("transit_jd", "Transit JD", t.JD(), "").
			Add("transit_utc", "Transit UTC", fmtTime(t), "")
		return a.print(res)

	case "altitude":
		obs, err := loc.resolve(fs)
		if err != nil {
			return usageFail(err.Error())
		}
		alt, err := planets.Altitude(planet, obs, jd)
		if err != nil {
			return fail(err)
		}
		res := &output.Result{Title: fmt.Sprintf("%s altitude", planet)}
		res.Add("planet", "Planet", planet.String(), "").
			Add("julian_date", "Julian Date", jd.JD(), "").
			Add("altitude_degrees", "Altitude", alt.Degrees(), "deg")
		return a.print(res)
	}
	return usageFail(fmt.Sprintf("planets: unknown subcommand %q", sub))
}
