package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/astral-go/astral/output"
	"github.com/astral-go/astral/timescale"
)

func (a *app) timeCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral time {now | convert VALUE [--from jd|mjd] | jd Y M D [H MI S] | lst LON [--jd JD]}")
	}
	switch args[0] {
	case "now":
		return a.timeResult(timescale.Now())
	case "convert":
		return a.timeConvert(args[1:])
	case "jd":
		return a.timeFromCalendar(args[1:])
	case "lst":
		return a.timeLST(args[1:])
	}
	return usageFail(fmt.Sprintf("time: unknown subcommand %q", args[0]))
}

// timeResult prints the standard view of an instant.
func (a *app) timeResult(jd timescale.JulianDate) int {
	a.rec.Step("Julian Date", fmt.Sprintf("JD = %.10f", jd.JD()))
	res := &output.Result{Title: "Time"}
	res.Add("julian_date", "Julian Date", jd.JD(), "").
		Add("modified_jd", "Modified JD", jd.MJD(), "").
		Add("t_j2000", "Centuries since J2000", jd.J2000Century(), "").
		Add("days_since_j2000", "Days since J2000", jd.DaysSinceJ2000(), "").
		Add("utc", "UTC", fmtTime(jd), "").
		Add("gmst_hours", "GMST", jd.GMST(), "hours")
	return a.print(res)
}

func (a *app) timeConvert(args []string) int {
	fs := flag.NewFlagSet("time convert", flag.ContinueOnError)
	from := fs.String("from", "jd", "input scale: jd or mjd")
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return exitUsage
		}
		if fs.NArg() == 0 {
			break
		}
		pos = append(pos, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(pos) != 1 {
		return usageFail("usage: astral time convert VALUE [--from jd|mjd]")
	}
	v, err := strconv.ParseFloat(pos[0], 64)
	if err != nil {
		return usageFail(fmt.Sprintf("time convert: invalid value %q", pos[0]))
	}

	var jd timescale.JulianDate
	switch *from {
	case "jd":
		jd = timescale.New(v)
	case "mjd":
		jd = timescale.FromMJD(v)
	default:
		return usageFail(fmt.Sprintf("time convert: unknown scale %q", *from))
	}
	return a.timeResult(jd)
}

func (a *app) timeFromCalendar(args []string) int {
	if len(args) != 3 && len(args) != 6 {
		return usageFail("usage: astral time jd YEAR MONTH DAY [HOUR MINUTE SECOND]")
	}
	nums := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return usageFail(fmt.Sprintf("time jd: invalid component %q", s))
		}
		nums[i] = v
	}
	var h, mi int
	var sec float64
	if len(nums) == 6 {
		h, mi, sec = int(nums[3]), int(nums[4]), nums[5]
	}
	jd := timescale.FromCalendar(int(nums[0]), int(nums[1]), int(nums[2]), h, mi, sec)
	a.rec.Step("Calendar to Julian Date", fmt.Sprintf(
		"%04d-%02d-%02d %02d:%02d:%06.3f UTC → JD %.10f",
		int(nums[0]), int(nums[1]), int(nums[2]), h, mi, sec, jd.JD()))
	return a.timeResult(jd)
}

func (a *app) timeLST(args []string) int {
	fs := flag.NewFlagSet("time lst", flag.ContinueOnError)
	jdFlag := fs.Float64("jd", 0, "Julian Date (default: now)")
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return exitUsage
		}
		if fs.NArg() == 0 {
			break
		}
		pos = append(pos, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(pos) != 1 {
		return usageFail("usage: astral time lst LON_DEG [--jd JD]")
	}
	lon, err := parseFloatArg(pos[0], "longitude")
	if err != nil {
		return usageFail(err.Error())
	}
	jd := jdOrNow(*jdFlag, flagWasSet(fs, "jd"))

	gmst := jd.GMST()
	lst := jd.LST(lon)
	a.rec.Step("Sidereal time", fmt.Sprintf(
		"GMST = %.10f h\nLST  = GMST + lon/15 = %.10f h", gmst, lst))

	res := &output.Result{Title: "Local Sidereal Time"}
	res.Add("julian_date", "Julian Date", jd.JD(), "").
		Add("longitude_degrees", "Longitude", lon, "deg").
		Add("gmst_hours", "GMST", gmst, "hours").
		Add("lst_hours", "LST", lst, "hours")
	return a.print(res)
}
