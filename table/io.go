// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/ctable/column"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space).
type Delims int32 //enums:enum

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect is used during reading a file: reads the first line and
	// detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

const (
	// Headers is passed to CSV methods for the headers arg, to use
	// headers that capture the full kind, depth and unit of each
	// column, enabling exact reloading.
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to not
	// use headers.
	NoHeaders = false
)

// SaveCSV writes the table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the
// kind, depth and unit of the columns, enabling full reloading of
// exactly the same table format and data (recommended).
// Otherwise, only the data is written. Invalid rows are written as
// empty cells.
func (dt *Table) SaveCSV(filename string, delim Delims, headers bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return fmt.Errorf("%w: %s", ErrFileNotCreated, filename)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim, headers)
	bw.Flush()
	return err
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the
// official CSV standard. If the first row holds kind-tagged headers
// (as written by [Table.SaveCSV] with headers), columns are
// constructed exactly from them; otherwise kinds are inferred from
// the data and the first row is treated as plain column names.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS] filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		log.Println(err)
		return fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from the given reader. See [Table.OpenCSV].
// Replaces any existing columns. The loaded table has every row
// selected.
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	if delim == Detect {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrFileIO, err)
		}
		delim = detectDelim(data)
		r = bytes.NewReader(data)
	}
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadFileFormat, err)
	}
	if len(rec) == 0 {
		return nil
	}
	nt := NewTable(0)
	if detectHeaders(rec[0]) {
		err = configFromHeaders(nt, rec[0])
	} else {
		err = configFromDataValues(nt, rec[0], rec)
	}
	if err != nil {
		return err
	}
	rows := len(rec) - 1
	nt.SetNumRows(rows)
	for ri := 0; ri < rows; ri++ {
		nt.readCSVRow(rec[ri+1], ri)
	}
	ver := dt.version // keep the version monotonic for outstanding cursors
	*dt = *nt
	dt.version = ver
	dt.sel.reset()
	dt.structChanged()
	return nil
}

// detectDelim inspects the first line for tabs vs commas.
func detectDelim(data []byte) Delims {
	ln := data
	if nl := bytes.IndexByte(data, '\n'); nl >= 0 {
		ln = data[:nl]
	}
	if bytes.ContainsRune(ln, '\t') {
		return Tab
	}
	if bytes.ContainsRune(ln, ',') {
		return Comma
	}
	return Space
}

// readCSVRow reads a record of CSV data into the given row.
// Empty cells leave the row invalid; for numeric columns NaN and Inf
// tokens do too.
func (dt *Table) readCSVRow(rec []string, row int) {
	ci := 0
	for _, cl := range dt.Columns.List {
		cs := cl.Cells()
		for cell := 0; cell < cs; cell++ {
			if ci >= len(rec) {
				return
			}
			str := strings.TrimSpace(rec[ci])
			ci++
			if str == "" {
				continue
			}
			if cl.Kind().IsNumeric() &&
				(str == "NaN" || str == "-NaN" || str == "Inf" || str == "-Inf" || str == "+Inf") {
				continue
			}
			cl.SetString(str, row, cell)
		}
	}
}

// detectHeaders reports whether every non-empty field carries a
// Kind: tag as written by [headerFor].
func detectHeaders(hdrs []string) bool {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		ci := strings.Index(hd, ":")
		if ci <= 0 {
			return false
		}
		if _, ok := column.KindByName(hd[:ci]); !ok {
			return false
		}
	}
	return true
}

// configFromHeaders configures the table from kind-tagged headers.
func configFromHeaders(dt *Table, hdrs []string) error {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		k, name, depth, unit, err := parseHeader(hd)
		if err != nil {
			return err
		}
		cl, err := dt.AddColumnOfKind(k, name, depth)
		if err != nil {
			return err
		}
		cl.SetUnit(unit)
	}
	return nil
}

// headerFor returns the header string for one column:
// Kind:Name, with optional [depth] and {unit} suffixes,
// e.g. Float64:Flux[4]{Jy}.
func headerFor(cl column.Column) string {
	hd := cl.Kind().String() + ":" + cl.Name()
	if cl.Depth() > 0 {
		hd += "[" + strconv.Itoa(cl.Depth()) + "]"
	}
	if cl.Unit() != "" {
		hd += "{" + cl.Unit() + "}"
	}
	return hd
}

// parseHeader parses a header written by [headerFor].
func parseHeader(hd string) (k column.Kind, name string, depth int, unit string, err error) {
	ci := strings.Index(hd, ":")
	if ci <= 0 {
		return 0, "", 0, "", fmt.Errorf("%w: header %q has no kind tag", ErrBadFileFormat, hd)
	}
	k, ok := column.KindByName(hd[:ci])
	if !ok {
		return 0, "", 0, "", fmt.Errorf("%w: header %q has unknown kind %q", ErrBadFileFormat, hd, hd[:ci])
	}
	name = hd[ci+1:]
	if ui := strings.Index(name, "{"); ui >= 0 && strings.HasSuffix(name, "}") {
		unit = name[ui+1 : len(name)-1]
		name = name[:ui]
	}
	if di := strings.Index(name, "["); di >= 0 && strings.HasSuffix(name, "]") {
		depth, err = strconv.Atoi(name[di+1 : len(name)-1])
		if err != nil || depth < 0 {
			return 0, "", 0, "", fmt.Errorf("%w: header %q has bad depth", ErrBadFileFormat, hd)
		}
		name = name[:di]
	}
	if name == "" {
		return 0, "", 0, "", fmt.Errorf("%w: header %q has empty name", ErrBadFileFormat, hd)
	}
	return k, name, depth, unit, nil
}

// configFromDataValues configures the table from plain headers,
// with kinds inferred from the string representation of the records.
func configFromDataValues(dt *Table, hdrs []string, rec [][]string) error {
	nr := len(rec)
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		k := column.Int64
		for ri := 1; ri < nr; ri++ {
			if ci >= len(rec[ri]) {
				continue
			}
			rv := strings.TrimSpace(rec[ri][ci])
			if rv == "" {
				continue
			}
			ck := inferKind(rv)
			switch {
			case ck == column.StringKind:
				k = ck
			case k == column.StringKind:
			case ck == column.Float64 && k == column.Int64:
				k = ck
			}
		}
		if _, err := dt.AddColumnOfKind(k, hd, 0); err != nil {
			return err
		}
	}
	return nil
}

// inferKind returns the narrowest of Int64, Float64, StringKind that
// can represent the given string.
func inferKind(str string) column.Kind {
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return column.Int64
	}
	if _, err := strconv.ParseFloat(str, 64); err == nil {
		return column.Float64
	}
	return column.StringKind
}

// WriteCSV writes the table to the given writer. See [Table.SaveCSV].
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		hdrs := make([]string, 0, dt.NumColumns())
		for _, cl := range dt.Columns.List {
			hdrs = append(hdrs, headerFor(cl))
			for ri__ := 0; ri__ < cl.Cells()-1; ri__++ {
				hdrs = append(hdrs, "") // pad array columns to one field per cell
			}
		}
		if err := cw.Write(hdrs); err != nil {
			return fmt.Errorf("%w: %s", ErrFileIO, err)
		}
	}
	for ri := 0; ri < dt.rows; ri++ {
		if err := dt.writeCSVRow(cw, ri); err != nil {
			return fmt.Errorf("%w: %s", ErrFileIO, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeCSVRow writes one row; invalid rows become empty cells.
func (dt *Table) writeCSVRow(cw *csv.Writer, row int) error {
	rec := make([]string, 0, dt.NumColumns())
	for _, cl := range dt.Columns.List {
		cs := cl.Cells()
		for cell := 0; cell < cs; cell++ {
			if !cl.IsValid(row) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, cl.StringValue(row, cell))
		}
	}
	return cw.Write(rec)
}
