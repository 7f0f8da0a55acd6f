// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"strconv"
)

// kindFor returns the Kind for element type T.
func kindFor[T Elem]() Kind {
	var v T
	switch any(v).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return StringKind
	}
}

// StringToFloat64 converts a string value to float64 using strconv,
// returning 0 if it does not parse.
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return 0
}

// Float64ToString converts a float64 to a string using strconv, g format.
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

func elemToFloat[T Elem](v T) float64 {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return float64(x)
	case uint8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	case string:
		return StringToFloat64(x)
	}
	return 0
}

func elemToInt[T Elem](v T) int64 {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return int64(x)
	case uint8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case complex64:
		return int64(real(x))
	case complex128:
		return int64(real(x))
	case string:
		if iv, err := strconv.ParseInt(x, 10, 64); err == nil {
			return iv
		}
		return int64(StringToFloat64(x))
	}
	return 0
}

func elemToComplex[T Elem](v T) complex128 {
	switch x := any(v).(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	case string:
		if cv, err := strconv.ParseComplex(x, 128); err == nil {
			return cv
		}
		return complex(StringToFloat64(x), 0)
	}
	return complex(elemToFloat(v), 0)
}

func elemToString[T Elem](v T) string {
	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return Float64ToString(x)
	case complex64:
		return strconv.FormatComplex(complex128(x), 'g', -1, 64)
	case complex128:
		return strconv.FormatComplex(x, 'g', -1, 128)
	case string:
		return x
	}
	return ""
}

func setElemFloat[T Elem](dst *T, v float64) {
	switch d := any(dst).(type) {
	case *bool:
		*d = v != 0
	case *int8:
		*d = int8(v)
	case *uint8:
		*d = uint8(v)
	case *int16:
		*d = int16(v)
	case *int32:
		*d = int32(v)
	case *int64:
		*d = int64(v)
	case *float32:
		*d = float32(v)
	case *float64:
		*d = v
	case *complex64:
		*d = complex64(complex(v, 0))
	case *complex128:
		*d = complex(v, 0)
	case *string:
		*d = Float64ToString(v)
	}
}

func setElemInt[T Elem](dst *T, v int64) {
	switch d := any(dst).(type) {
	case *bool:
		*d = v != 0
	case *int8:
		*d = int8(v)
	case *uint8:
		*d = uint8(v)
	case *int16:
		*d = int16(v)
	case *int32:
		*d = int32(v)
	case *int64:
		*d = v
	case *float32:
		*d = float32(v)
	case *float64:
		*d = float64(v)
	case *complex64:
		*d = complex64(complex(float64(v), 0))
	case *complex128:
		*d = complex(float64(v), 0)
	case *string:
		*d = strconv.FormatInt(v, 10)
	}
}

func setElemComplex[T Elem](dst *T, v complex128) {
	switch d := any(dst).(type) {
	case *complex64:
		*d = complex64(v)
	case *complex128:
		*d = v
	case *string:
		*d = strconv.FormatComplex(v, 'g', -1, 128)
	default:
		setElemFloat(dst, real(v))
	}
}

func setElemString[T Elem](dst *T, v string) {
	switch d := any(dst).(type) {
	case *bool:
		bv, _ := strconv.ParseBool(v)
		*d = bv
	case *string:
		*d = v
	case *complex64:
		*d = complex64(elemToComplex(v))
	case *complex128:
		*d = elemToComplex(v)
	default:
		switch any(dst).(type) {
		case *float32, *float64:
			setElemFloat(dst, StringToFloat64(v))
		default:
			setElemInt(dst, elemToInt(v))
		}
	}
}
