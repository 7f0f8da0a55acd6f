// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cmp"
	"fmt"
	"regexp"

	"cogentcore.org/ctable/column"
)

// Op is a comparison operator for selection predicates.
type Op int32

const (
	Equal Op = iota
	NotEqual
	Greater
	GreaterEq
	Less
	LessEq
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Greater:
		return ">"
	case GreaterEq:
		return ">="
	case Less:
		return "<"
	case LessEq:
		return "<="
	}
	return "?"
}

// OpByName returns the Op for the given operator string,
// false if not recognized.
func OpByName(s string) (Op, bool) {
	switch s {
	case "==", "=":
		return Equal, true
	case "!=", "<>":
		return NotEqual, true
	case ">":
		return Greater, true
	case ">=":
		return GreaterEq, true
	case "<":
		return Less, true
	case "<=":
		return LessEq, true
	}
	return 0, false
}

// ordered returns whether the operator requires an ordering, which
// complex kinds do not support.
func (op Op) ordered() bool { return op != Equal && op != NotEqual }

func satisfies[T cmp.Ordered](a, b T, op Op) bool {
	switch op {
	case Equal:
		return a == b
	case NotEqual:
		return a != b
	case Greater:
		return a > b
	case GreaterEq:
		return a >= b
	case Less:
		return a < b
	default:
		return a <= b
	}
}

///////  Selection state queries

// SelectedCount returns the number of currently selected rows.
func (dt *Table) SelectedCount() int { return dt.sel.selCount(dt.rows) }

// IsSelected returns whether the given row is selected.
func (dt *Table) IsSelected(row int) bool {
	if row < 0 || row >= dt.rows {
		return false
	}
	return dt.sel.isSelected(row)
}

// SelectedRows returns the indexes of the selected rows, in order.
func (dt *Table) SelectedRows() []int {
	rows := make([]int, 0, dt.SelectedCount())
	for row := 0; row < dt.rows; row++ {
		if dt.sel.isSelected(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// SelectAll selects every row, returning the selected count.
func (dt *Table) SelectAll() int {
	dt.sel.reset()
	return dt.rows
}

// SelectNone unselects every row.
func (dt *Table) SelectNone() int {
	dt.sel.reset()
	dt.sel.complement(dt.rows)
	return 0
}

// NotSelected complements every row's selection flag, returning the
// new selected count.
func (dt *Table) NotSelected() int {
	dt.sel.complement(dt.rows)
	return dt.SelectedCount()
}

// applyPredicate narrows (and) or widens (or) the selection with the
// given per-row predicate, which must already exclude invalid rows.
// Returns the resulting selected count. O(rows).
func (dt *Table) applyPredicate(and bool, pred func(row int) bool) int {
	n := dt.rows
	dt.sel.maskNeeded(n)
	if and {
		for row := 0; row < n; row++ {
			if dt.sel.mask.Index(row) && !pred(row) {
				dt.sel.set(row, false)
			}
		}
	} else {
		for row := 0; row < n; row++ {
			if !dt.sel.mask.Index(row) && pred(row) {
				dt.sel.set(row, true)
			}
		}
	}
	dt.sel.normalize(n)
	return dt.sel.selCount(n)
}

///////  Column vs literal

// And narrows the selection to rows that are selected and whose value
// in the named column satisfies op against the literal. Invalid
// elements never satisfy any comparison. String literals for Equal
// and NotEqual are compiled as POSIX extended regular expressions;
// ordering operators compare strings lexicographically.
// Returns the resulting selected count, -1 on error.
func (dt *Table) And(name string, op Op, val any) (int, error) {
	pred, err := dt.literalPredicate(name, op, val)
	if err != nil {
		return -1, err
	}
	return dt.applyPredicate(true, pred), nil
}

// Or widens the selection with rows whose value in the named column
// satisfies op against the literal; invalid elements are never added.
// See [Table.And] for literal handling.
// Returns the resulting selected count, -1 on error.
func (dt *Table) Or(name string, op Op, val any) (int, error) {
	pred, err := dt.literalPredicate(name, op, val)
	if err != nil {
		return -1, err
	}
	return dt.applyPredicate(false, pred), nil
}

func (dt *Table) literalPredicate(name string, op Op, val any) (func(row int) bool, error) {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return nil, err
	}
	if cl.Depth() > 0 {
		return nil, fmt.Errorf("table: selection on array column %q: %w", name, ErrUnsupportedMode)
	}
	switch cl.Kind().Class() {
	case column.StringClass:
		lit, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("table: column %q needs a string literal, have %T: %w", name, val, ErrTypeMismatch)
		}
		if op.ordered() {
			return func(row int) bool {
				return cl.IsValid(row) && satisfies(cl.StringValue(row, 0), lit, op)
			}, nil
		}
		re, err := regexp.CompilePOSIX(lit)
		if err != nil {
			return nil, fmt.Errorf("table: pattern %q: %v: %w", lit, err, ErrIllegalArgument)
		}
		want := op == Equal
		return func(row int) bool {
			return cl.IsValid(row) && re.MatchString(cl.StringValue(row, 0)) == want
		}, nil
	case column.ComplexClass:
		if op.ordered() {
			return nil, fmt.Errorf("table: ordering on complex column %q: %w", name, ErrIllegalArgument)
		}
		var lit complex128
		switch v := val.(type) {
		case complex128:
			lit = v
		case complex64:
			lit = complex128(v)
		default:
			fv, ok := toFloat64(val)
			if !ok {
				return nil, fmt.Errorf("table: column %q needs a numeric literal, have %T: %w", name, val, ErrTypeMismatch)
			}
			lit = complex(fv, 0)
		}
		want := op == Equal
		return func(row int) bool {
			return cl.IsValid(row) && (cl.Complex(row, 0) == lit) == want
		}, nil
	case column.IntClass:
		fv, ok := toFloat64(val)
		if !ok {
			return nil, fmt.Errorf("table: column %q needs a numeric literal, have %T: %w", name, val, ErrTypeMismatch)
		}
		// compare in float64 when the literal has a fraction,
		// otherwise exactly in int64
		if fv == float64(int64(fv)) {
			lit := int64(fv)
			return func(row int) bool {
				return cl.IsValid(row) && satisfies(cl.Int(row, 0), lit, op)
			}, nil
		}
		return func(row int) bool {
			return cl.IsValid(row) && satisfies(cl.Float(row, 0), fv, op)
		}, nil
	default:
		fv, ok := toFloat64(val)
		if !ok {
			return nil, fmt.Errorf("table: column %q needs a numeric literal, have %T: %w", name, val, ErrTypeMismatch)
		}
		return func(row int) bool {
			return cl.IsValid(row) && satisfies(cl.Float(row, 0), fv, op)
		}, nil
	}
}

///////  Column vs column

// AndColumns narrows the selection to rows where column a satisfies op
// against column b at the same row. Both columns must be scalar and
// simultaneously numeric or simultaneously string; numeric kinds are
// promoted to the wider of the two before comparing. A row that is
// invalid in either column never satisfies the comparison.
// Returns the resulting selected count, -1 on error.
func (dt *Table) AndColumns(a string, op Op, b string) (int, error) {
	pred, err := dt.columnPredicate(a, op, b)
	if err != nil {
		return -1, err
	}
	return dt.applyPredicate(true, pred), nil
}

// OrColumns widens the selection with rows where column a satisfies op
// against column b at the same row. See [Table.AndColumns].
// Returns the resulting selected count, -1 on error.
func (dt *Table) OrColumns(a string, op Op, b string) (int, error) {
	pred, err := dt.columnPredicate(a, op, b)
	if err != nil {
		return -1, err
	}
	return dt.applyPredicate(false, pred), nil
}

func (dt *Table) columnPredicate(a string, op Op, b string) (func(row int) bool, error) {
	ca, err := dt.ColumnTry(a)
	if err != nil {
		return nil, err
	}
	cb, err := dt.ColumnTry(b)
	if err != nil {
		return nil, err
	}
	if ca.Depth() > 0 || cb.Depth() > 0 {
		return nil, fmt.Errorf("table: selection on array columns %q, %q: %w", a, b, ErrUnsupportedMode)
	}
	ka, kb := ca.Kind(), cb.Kind()
	if (ka == column.StringKind) != (kb == column.StringKind) {
		return nil, fmt.Errorf("table: cannot compare %v column %q with %v column %q: %w", ka, a, kb, b, ErrInvalidType)
	}
	pk, err := column.Promote(ka, kb)
	if err != nil {
		return nil, err
	}
	if pk.Class() == column.ComplexClass && op.ordered() {
		return nil, fmt.Errorf("table: ordering on complex columns %q, %q: %w", a, b, ErrIllegalArgument)
	}
	bothValid := func(row int) bool { return ca.IsValid(row) && cb.IsValid(row) }
	switch pk.Class() {
	case column.StringClass:
		return func(row int) bool {
			return bothValid(row) && satisfies(ca.StringValue(row, 0), cb.StringValue(row, 0), op)
		}, nil
	case column.IntClass:
		return func(row int) bool {
			return bothValid(row) && satisfies(ca.Int(row, 0), cb.Int(row, 0), op)
		}, nil
	case column.ComplexClass:
		want := op == Equal
		return func(row int) bool {
			return bothValid(row) && (ca.Complex(row, 0) == cb.Complex(row, 0)) == want
		}, nil
	default:
		return func(row int) bool {
			return bothValid(row) && satisfies(ca.Float(row, 0), cb.Float(row, 0), op)
		}, nil
	}
}

///////  Invalid-ness and window predicates

// AndInvalid narrows the selection to rows where the named column's
// element is invalid. Returns the resulting selected count, -1 on error.
func (dt *Table) AndInvalid(name string) (int, error) {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return -1, err
	}
	return dt.applyPredicate(true, func(row int) bool { return !cl.IsValid(row) }), nil
}

// OrInvalid widens the selection with rows where the named column's
// element is invalid. Returns the resulting selected count, -1 on error.
func (dt *Table) OrInvalid(name string) (int, error) {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return -1, err
	}
	return dt.applyPredicate(false, func(row int) bool { return !cl.IsValid(row) }), nil
}

// AndWindow narrows the selection to the given row window, clamped to
// the table length. Returns the resulting selected count, -1 on error.
func (dt *Table) AndWindow(start, n int) (int, error) {
	if err := dt.windowCheck(start, n); err != nil {
		return -1, err
	}
	end := min(start+n, dt.rows)
	return dt.applyPredicate(true, func(row int) bool { return row >= start && row < end }), nil
}

// OrWindow widens the selection with the given row window, clamped to
// the table length. Returns the resulting selected count, -1 on error.
func (dt *Table) OrWindow(start, n int) (int, error) {
	if err := dt.windowCheck(start, n); err != nil {
		return -1, err
	}
	end := min(start+n, dt.rows)
	return dt.applyPredicate(false, func(row int) bool { return row >= start && row < end }), nil
}

func (dt *Table) windowCheck(start, n int) error {
	if n < 0 {
		return fmt.Errorf("table: negative window count %d: %w", n, ErrIllegalArgument)
	}
	if start < 0 || start > dt.rows {
		return fmt.Errorf("table: window start %d outside [0, %d]: %w", start, dt.rows, ErrOutOfRange)
	}
	return nil
}
