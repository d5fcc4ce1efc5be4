// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/serbench/benchseries"
)

func mustChart(t *testing.T, title string) *benchseries.Chart {
	t.Helper()
	c, err := benchseries.SingleSeries([]string{"akka"}, []int{1}, title)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCompose(t *testing.T) {
	a, b := mustChart(t, "Primitive"), mustChart(t, "ADT")
	tabs := []Tab{
		{Name: "JSON", Charts: []*benchseries.Chart{a, b}},
		{Name: "CBOR", Charts: []*benchseries.Chart{b}},
	}
	doc, err := Compose(tabs...)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Tabs) != 2 || doc.Tabs[0].Name != "JSON" || doc.Tabs[1].Name != "CBOR" {
		t.Fatalf("got tabs %+v", doc.Tabs)
	}
	if doc.Tabs[0].Charts[0] != a || doc.Tabs[0].Charts[1] != b {
		t.Errorf("chart order not preserved")
	}
	tabs[0].Charts[0] = nil
	if doc.Tabs[0].Charts[0] == nil {
		t.Errorf("document shares the caller's chart slice")
	}
	if doc.Tab("CBOR") == nil || doc.Tab("All") != nil {
		t.Errorf("Tab lookup failed")
	}
	if doc.Tab("JSON").Chart("ADT") != b || doc.Tab("JSON").Chart("Sequence") != nil {
		t.Errorf("Chart lookup failed")
	}

	empty, err := Compose()
	if err != nil || len(empty.Tabs) != 0 {
		t.Errorf("Compose() = %+v, %v", empty, err)
	}
}

func TestComposeErrors(t *testing.T) {
	c := mustChart(t, "Primitive")
	bad := &benchseries.Chart{Title: "ADT", Traces: []benchseries.Trace{{X: []string{"a"}}}}
	for _, test := range []struct {
		tabs []Tab
		want string
	}{
		{[]Tab{{Name: ""}}, "tab 0 has no name"},
		{[]Tab{{Name: "JSON"}, {Name: "JSON"}}, `duplicate tab "JSON"`},
		{[]Tab{{Name: "JSON", Charts: []*benchseries.Chart{c, nil}}}, `tab "JSON": chart 1 is missing`},
		{[]Tab{{Name: "All", Charts: []*benchseries.Chart{bad}}}, `tab "All": chart ADT`},
	} {
		doc, err := Compose(test.tabs...)
		if err == nil {
			t.Errorf("Compose(%+v) succeeded", test.tabs)
			continue
		}
		if doc != nil {
			t.Errorf("Compose(%+v) returned a document with error", test.tabs)
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("got error %q, want %q", err, test.want)
		}
	}

	_, err := Compose(Tab{Name: "All", Charts: []*benchseries.Chart{bad}})
	var lerr *benchseries.LengthMismatchError
	if !errors.As(err, &lerr) {
		t.Errorf("got %v, want *LengthMismatchError", err)
	}
}
