package main

import (
	"flag"
	"fmt"

	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/output"
)

func (a *app) observerCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral observer {add NAME --lat F --lon F [--elev M] [--timezone TZ] | list | remove NAME | default NAME}")
	}

	path, err := observer.ConfigPath()
	if err != nil {
		return fail(err)
	}
	profiles, err := observer.Load(path)
	if err != nil {
		return fail(err)
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return usageFail("usage: astral observer add NAME --lat F --lon F [--elev M] [--timezone TZ]")
		}
		name := args[1]
		fs := flag.NewFlagSet("observer add", flag.ContinueOnError)
		lat := fs.Float64("lat", 0, "latitude, degrees (+N)")
		lon := fs.Float64("lon", 0, "longitude, degrees (+E)")
		elev := fs.Float64("elev", 0, "elevation, meters")
		tz := fs.String("timezone", "", "IANA timezone name")
		if err := fs.Parse(args[2:]); err != nil {
			return exitUsage
		}
		if !flagWasSet(fs, "lat") || !flagWasSet(fs, "lon") {
			return usageFail("observer add: --lat and --lon are required")
		}
		obs, err := observer.FromDegrees(name, *lat, *lon, *elev, *tz)
		if err != nil {
			return fail(err)
		}
		profiles.Add(obs)
		if err := profiles.Save(); err != nil {
			return fail(err)
		}
		res := &output.Result{Title: "Observer added"}
		res.Add("name", "Name", obs.Name, "").
			Add("latitude_degrees", "Latitude", obs.LatDeg(), "deg").
			Add("longitude_degrees", "Longitude", obs.LonDeg(), "deg").
			Add("elevation_m", "Elevation", obs.Elevation, "m").
			Add("config_path", "Config", path, "")
		return a.print(res)

	case "list":
		res := &output.Result{Title: "Observer Profiles"}
		res.Add("default", "Default", profiles.DefaultName(), "")
		for _, name := range profiles.Names() {
			obs, err := profiles.Get(name)
			if err != nil {
				return fail(err)
			}
			marker := " "
			if name == profiles.DefaultName() {
				marker = "★"
			}
			res.Add(name, fmt.Sprintf("%s %s", marker, name), obs.String(), "")
		}
		return a.print(res)

	case "remove":
		if len(args) != 2 {
			return usageFail("usage: astral observer remove NAME")
		}
		if err := profiles.Remove(args[1]); err != nil {
			return fail(err)
		}
		if err := profiles.Save(); err != nil {
			return fail(err)
		}
		res := &output.Result{Title: "Observer removed"}
		res.Add("name", "Name", args[1], "")
		return a.print(res)

	case "default":
		if len(args) != 2 {
			return usageFail("usage: astral observer default NAME")
		}
		if err := profiles.SetDefault(args[1]); err != nil {
			return fail(err)
		}
		if err := profiles.Save(); err != nil {
			return fail(err)
		}
		res := &output.Result{Title: "Default observer"}
		res.Add("default", "Default", args[1], "")
		return a.print(res)
	}
	return usageFail(fmt.Sprintf("observer: unknown subcommand %q", args[0]))
}
