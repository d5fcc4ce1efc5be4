// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"strings"
)

// A Category is a payload shape. The value of a Category is the
// position of its sample in a result file.
type Category int

const (
	Primitive Category = iota
	ADT
	Sequence

	// NumCategories is the number of known categories. Result
	// files must have at least this many samples.
	NumCategories = int(Sequence) + 1
)

// Categories lists every Category in result file order.
var Categories = []Category{Primitive, ADT, Sequence}

var categoryNames = [...]string{
	Primitive: "Primitive",
	ADT:       "ADT",
	Sequence:  "Sequence",
}

// Index returns the position of c's sample in a result file.
func (c Category) Index() int {
	return int(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < NumCategories
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory returns the Category named s. Matching ignores case.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// A Format is a serialization format whose results are compared.
type Format string

const (
	JSON Format = "JSON"
	CBOR Format = "CBOR"
)

// Formats lists the formats in report order.
var Formats = []Format{JSON, CBOR}

// Dir returns the conventional name of the directory holding results
// for f.
func (f Format) Dir() string {
	return strings.ToLower(string(f))
}
