// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ctable inspects and filters column table files from the
// command line: print the schema of a CSV/TSV table, show its rows
// with optional selection and sorting, or convert between delimiters.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	pt "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cogentcore.org/ctable/table"
)

var (
	delimFlag string
	whereFlag []string
	sortFlag  []string
	limitFlag int
)

func main() {
	root := &cobra.Command{
		Use:           "ctable",
		Short:         "inspect and filter column table files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&delimFlag, "delim", "detect", "input delimiter: tab, comma, space or detect")

	show := &cobra.Command{
		Use:   "show <file>",
		Short: "print the rows of a table, filtered and sorted",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	show.Flags().StringArrayVar(&whereFlag, "where", nil, `row filter like "flux > 1.5"; repeatable, filters compose with AND`)
	show.Flags().StringArrayVar(&sortFlag, "sort", nil, "sort key column, with optional :desc suffix; repeatable")
	show.Flags().IntVar(&limitFlag, "limit", 0, "print at most this many rows (0 = all)")

	schema := &cobra.Command{
		Use:   "schema <file>",
		Short: "print the column names, kinds, depths and units of a table",
		Args:  cobra.ExactArgs(1),
		RunE:  runSchema,
	}

	convert := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "rewrite a table file, with the delimiter chosen by the output extension",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}

	root.AddCommand(show, schema, convert)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ctable:", err)
		os.Exit(1)
	}
}

func parseDelim(s string) (table.Delims, error) {
	switch s {
	case "tab":
		return table.Tab, nil
	case "comma":
		return table.Comma, nil
	case "space":
		return table.Space, nil
	case "detect":
		return table.Detect, nil
	}
	return 0, fmt.Errorf("unknown delimiter %q", s)
}

func open(filename string) (*table.Table, error) {
	delim, err := parseDelim(delimFlag)
	if err != nil {
		return nil, err
	}
	dt := table.NewTable(0)
	if err := dt.OpenCSV(filename, delim); err != nil {
		return nil, err
	}
	return dt, nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	dt, err := open(args[0])
	if err != nil {
		return err
	}
	tw := pt.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(pt.StyleLight)
	tw.AppendHeader(pt.Row{"Column", "Kind", "Depth", "Unit", "Invalid"})
	nc := dt.ColumnNames()
	for {
		name, ok := nc.Next()
		if !ok {
			break
		}
		cl := dt.Column(name)
		tw.AppendRow(pt.Row{name, cl.Kind().String(), cl.Depth(), cl.Unit(), cl.CountInvalid()})
	}
	tw.AppendFooter(pt.Row{"", "", "", "rows", dt.Rows()})
	tw.Render()
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	dt, err := open(args[0])
	if err != nil {
		return err
	}
	for _, w := range whereFlag {
		if err := applyWhere(dt, w); err != nil {
			return err
		}
	}
	if len(sortFlag) > 0 {
		keys := make([]table.SortKey, len(sortFlag))
		for i, s := range sortFlag {
			name, suffix, _ := strings.Cut(s, ":")
			if suffix != "" && suffix != "desc" && suffix != "asc" {
				return fmt.Errorf("bad sort key %q", s)
			}
			keys[i] = table.SortKey{Column: name, Descending: suffix == "desc"}
		}
		if err := dt.SortColumns(keys...); err != nil {
			return err
		}
	}
	render(dt)
	return nil
}

// applyWhere parses one "column op literal" filter and narrows the
// table's selection with it.
func applyWhere(dt *table.Table, expr string) error {
	parts := strings.Fields(expr)
	if len(parts) < 3 {
		return fmt.Errorf("bad filter %q: want column, operator, value", expr)
	}
	op, ok := table.OpByName(parts[1])
	if !ok {
		return fmt.Errorf("bad filter %q: unknown operator %q", expr, parts[1])
	}
	lit := parseLiteral(strings.Join(parts[2:], " "))
	if _, err := dt.And(parts[0], op, lit); err != nil {
		return fmt.Errorf("filter %q: %w", expr, err)
	}
	return nil
}

// parseLiteral turns a command line value into the narrowest of
// int, float64 or string.
func parseLiteral(s string) any {
	if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
		return iv
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return fv
	}
	return strings.Trim(s, `"'`)
}

func render(dt *table.Table) {
	tw := pt.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(pt.StyleLight)

	hdr := pt.Row{"row"}
	var names []string
	nc := dt.ColumnNames()
	for {
		name, ok := nc.Next()
		if !ok {
			break
		}
		names = append(names, name)
		hdr = append(hdr, name)
	}
	tw.AppendHeader(hdr)

	shown := 0
	for _, row := range dt.SelectedRows() {
		if limitFlag > 0 && shown >= limitFlag {
			break
		}
		rec := pt.Row{row}
		for _, name := range names {
			cl := dt.Column(name)
			if !cl.IsValid(row) {
				rec = append(rec, "")
				continue
			}
			if cl.Cells() > 1 {
				vals := make([]string, cl.Cells())
				for cell := 0; cell < cl.Cells(); cell++ {
					vals[cell] = cl.StringValue(row, cell)
				}
				rec = append(rec, strings.Join(vals, " "))
				continue
			}
			rec = append(rec, cl.StringValue(row, 0))
		}
		tw.AppendRow(rec)
		shown++
	}
	tw.AppendFooter(pt.Row{"", fmt.Sprintf("%d of %d rows selected", dt.SelectedCount(), dt.Rows())})
	tw.Render()
}

func runConvert(cmd *cobra.Command, args []string) error {
	dt, err := open(args[0])
	if err != nil {
		return err
	}
	out := table.Tab
	if strings.HasSuffix(args[1], ".csv") {
		out = table.Comma
	}
	return dt.SaveCSV(args[1], out, table.Headers)
}
