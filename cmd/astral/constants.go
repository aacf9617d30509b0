package main

import (
	"fmt"

	"github.com/astral-go/astral/constants"
	"github.com/astral-go/astral/output"
)

func (a *app) constantsCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral constants {list | search QUERY | show NAME}")
	}
	switch args[0] {
	case "list":
		return a.constantsTable(constants.List())
	case "search":
		if len(args) != 2 {
			return usageFail("usage: astral constants search QUERY")
		}
		return a.constantsTable(constants.Search(args[1]))
	case "show":
		if len(args) != 2 {
			return usageFail("usage: astral constants show NAME")
		}
		c, err := constants.Get(args[1])
		if err != nil {
			return fail(err)
		}
		res := &output.Result{Title: c.Name}
		res.Add("name", "Name", c.Name, "").
			Add("value", "Value", c.Value, c.Unit).
			Add("uncertainty", "Uncertainty", c.Uncertainty, c.Unit).
			Add("reference", "Reference", c.Reference, "")
		return a.print(res)
	}
	return usageFail(fmt.Sprintf("constants: unknown subcommand %q", args[0]))
}

func (a *app) constantsTable(list []constants.Constant) int {
	res := &output.Result{Title: fmt.Sprintf("Constants (%d)", len(list))}
	for _, c := range list {
		unit := c.Unit
		if unit == "" {
			unit = "(dimensionless)"
		}
		res.Add(keyify(c.Name), c.Name, c.Value, unit)
	}
	return a.print(res)
}

// keyify turns a constant's display name into a stable snake_case JSON key.
func keyify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r-'A'+'a')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-' || r == '.':
			if len(out) > 0 && out[len(out)-1] != '_' {
				out = append(out, '_')
			}
		}
	}
	return string(out)
}
