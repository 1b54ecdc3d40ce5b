// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/x448/float16"
)

var typeFloat16 = reflect.TypeOf(float16.Float16(0))

// Summary returns a multi-line summary of the View's content.
// Inspired by numpy output: large axes are elided with "...".
func (v View[T]) Summary(precision int) string {
	if v.Size() == 0 {
		return fmt.Sprintf("%s%s(empty)", v.shape, reflect.TypeFor[T]())
	}

	// Easy string building.
	var buf bytes.Buffer
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&buf, format, args...) }

	// Print value with appropriate formatting:
	wValue := func(rv reflect.Value) {
		if rv.Type() == typeFloat16 {
			w("%.*g", precision, rv.Interface().(float16.Float16).Float32())
			return
		}
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			w("%d", rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			w("%d", rv.Uint())
		case reflect.Float32, reflect.Float64:
			w("%.*g", precision, rv.Float())
		case reflect.Complex64, reflect.Complex128:
			c := rv.Complex()
			w("(%.*g+%.*gi)", precision, real(c), precision, imag(c))
		case reflect.Bool:
			w("%v", rv.Bool())
		default:
			w("%v", rv.Interface())
		}
	}

	values := reflect.ValueOf(v.Values())
	dims := v.shape.Dimensions()
	for _, dim := range dims {
		w("[%d]", dim)
	}
	w("%s", reflect.TypeFor[T]())
	if tags := v.tags.String(); strings.Trim(tags, "[? ]") != "" {
		w("%s", tags)
	}

	// Recursive function to print elements
	var printElements func(index, indent int, currentShape []int)
	printElements = func(index, indent int, currentShape []int) {
		if len(currentShape) == 1 {
			// One row of data:
			w("{")
			n := currentShape[0]
			for i := 0; i < n; i++ {
				if n > 6 && i == 3 {
					// Apply ellipsis for large rows.
					w(", ...")
					i = n - 3
				}
				if i > 0 {
					w(", ")
				}
				wValue(values.Index(index + i))
			}
			w("}")
			return
		}

		// Outer axes:
		stride := 1
		for _, dim := range currentShape[1:] {
			stride *= dim
		}
		w("{")
		if indent == -1 {
			if currentShape[0] > 1 {
				// Break the line before outputting data if we are using more than one row.
				w("\n ")
			}
			indent = 1
		}
		indentStr := strings.Repeat(" ", indent)
		n := currentShape[0]
		for i := 0; i < n; i++ {
			if n > 6 && i == 3 {
				w(",\n%s...", indentStr)
				i = n - 3
			}
			if i > 0 {
				w(",\n%s", indentStr)
			}
			printElements(index+i*stride, indent+1, currentShape[1:])
		}
		w("}")
	}
	printElements(0, -1, dims)
	return buf.String()
}
