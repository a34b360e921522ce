package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/table"
)

type demo struct {
	name    string
	summary string
	build   func() table.Table
}

// demos are the sample tables shown by the demo command, in display order.
var demos = []demo{
	{"simple", "column limits, wrapping and alignment", simpleDemo},
	{"spans", "cells spanning several columns", spansDemo},
	{"cities", "a data table with continuation rows", citiesDemo},
	{"multiline", "cells with embedded line breaks", multilineDemo},
}

func demoNames() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.name
	}
	return names
}

func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "demo [" + strings.Join(demoNames(), "|") + "]",
		Short:     "Draw the built-in sample tables",
		Long: `Draw the built-in sample tables.

Header cells are bold. The bold escape sequences are written even when
output is piped, since they are part of the cell content the tables are
laid out around.`,
		ValidArgs: demoNames(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				i := slices.IndexFunc(demos, func(d demo) bool { return d.name == args[0] })
				if i < 0 {
					return errors.New(errors.ErrCodeInvalidInput, "unknown demo %q (available: %s)", args[0], strings.Join(demoNames(), ", "))
				}
				fmt.Fprintln(w, demos[i].build().Render())
				return nil
			}

			for i, d := range demos {
				if i > 0 {
					fmt.Fprintln(w)
				}
				printInfo(w, "%s: %s", StyleTitle.Render(d.name), d.summary)
				fmt.Fprintln(w, d.build().Render())
			}
			return nil
		},
	}
}

func centered(content string) table.Cell {
	return table.NewCell(content).WithAlignment(table.AlignCenter)
}

func simpleDemo() table.Table {
	return table.New().
		WithStyle(table.ASCII()).
		WithMaxColumnWidth(40).
		WithRow(table.NewRow().WithCell(centered("This is some centered text").WithColumnSpan(2))).
		WithRow(table.NewRow().WithCells(
			table.NewCell("This is left aligned text"),
			table.NewCell("This is right aligned text").WithAlignment(table.AlignRight))).
		WithRow(table.NewRow().WithCells(
			table.NewCell("This is left aligned text"),
			table.NewCell("This is right aligned text").WithAlignment(table.AlignRight))).
		WithRow(table.NewRow().WithCell(
			table.NewCell("This is some really really really really really really really really really long text that is going to wrap to the next line").
				WithColumnSpan(2)))
}

func spansDemo() table.Table {
	row := func(spans ...int) table.Row {
		words := []string{"", "One", "Two", "Three", "Four"}
		r := table.NewRow()
		for _, span := range spans {
			r = r.WithCell(centered(words[span]).WithColumnSpan(span))
		}
		return r
	}

	return table.New().
		WithStyle(table.Heavy()).
		WithRow(table.NewRow().WithCell(centered(StyleBold.Render("CELLS WITH MULTIPLE COLUMN SPANS")).WithColumnSpan(4))).
		WithRow(table.NewRow().WithCells(
			centered(StyleBold.Render("FIRST")),
			centered(StyleBold.Render("SECOND")),
			centered(StyleBold.Render("THIRD")),
			centered(StyleBold.Render("FOURTH")))).
		WithRows(
			row(1, 1, 1, 1),
			row(1, 1, 2),
			row(1, 2, 1),
			row(2, 1, 1),
			row(2, 2),
			row(1, 3),
			row(3, 1),
			row(4),
		)
}

var cities = [][4]string{
	{"Tokyo", "Japan", "139.6917", "35.6895"},
	{"Jakarta", "Indonesia", "106.8650", "-6.1751"},
	{"Delhi", "India", "77.1025", "28.7041"},
	{"Seoul", "South Korea", "126.9780", "37.5665"},
	{"Paris", "France", "2.3522", "48.8566"},
	{"London", "United Kingdom", "-0.1276", "51.5072"},
	{"Beijing", "China", "116.4074", "39.9042"},
	{"New York", "United States", "-74.0060", "40.7128"},
	{"São Paulo", "Brazil", "-46.6333", "-23.5505"},
	{"Mexico City", "Mexico", "-99.1332", "19.4326"},
	{"Mumbai", "India", "72.8777", "19.0760"},
	{"Los Angeles", "United States", "-118.2437", "34.0522"},
	{"Istanbul", "Turkey", "28.9784", "41.0082"},
}

func citiesDemo() table.Table {
	t := table.New().
		WithRow(table.NewRow().WithCell(centered(StyleBold.Render("CITIES AROUND THE WORLD")).WithColumnSpan(4))).
		WithRow(table.NewRow().WithCells(
			centered(StyleBold.Render("CITY")),
			centered(StyleBold.Render("COUNTRY")),
			centered(StyleBold.Render("LONGITUDE")),
			centered(StyleBold.Render("LATITUDE"))))

	for i, city := range cities {
		row := table.NewRow().WithCells(
			table.NewCell(city[0]),
			centered(city[1]),
			table.NewCell(city[2]).WithAlignment(table.AlignRight),
			table.NewCell(city[3]).WithAlignment(table.AlignRight))
		if i > 0 {
			row = row.WithoutTopBorder()
		}
		t = t.WithRow(row)
	}
	return t.WithStyle(table.Rounded())
}

func multilineDemo() table.Table {
	return table.New().
		WithStyle(table.Fancy()).
		WithRow(table.NewRow().WithCells(
			centered(StyleBold.Render("CLIENT ID")),
			centered(StyleBold.Render("CLIENT NAME")),
			centered(StyleBold.Render("GRANT TYPES")),
			centered(StyleBold.Render("SCOPES")))).
		WithRow(table.NewRow().WithCells(
			table.NewCell("58d4b31cebc380011bf6961d7d05a40a"),
			table.NewCell("AwesomeService"),
			table.NewCell("authorization_code\nclient_credentials\nrefresh_token"),
			table.NewCell("openid\nprofile"))).
		WithRow(table.NewRow().WithCells(
			table.NewCell("fb77c0f0ffccf92905c090cd6647d8eb"),
			table.NewCell("FabulousProject"),
			table.NewCell("authorization_code\nimplicit"),
			table.NewCell("openid\nnickname\nusername")))
}
