// SPDX-License-Identifier: MPL-2.0

package closure

import (
	"reflect"
	"testing"
)

func TestScanReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Reference
	}{
		{
			name: "no references",
			text: "= Heading\nJust prose, no directives.",
			want: nil,
		},
		{
			name: "single import",
			text: `#import "lib.typ"`,
			want: []Reference{{Path: "lib.typ", Kind: RefImport}},
		},
		{
			name: "import with extra whitespace",
			text: `#import   "utils/helpers.typ"`,
			want: []Reference{{Path: "utils/helpers.typ", Kind: RefImport}},
		},
		{
			name: "import with selector suffix",
			text: `#import "lib.typ": func-a, func-b`,
			want: []Reference{{Path: "lib.typ", Kind: RefImport}},
		},
		{
			name: "image asset",
			text: `#figure(image("logo.png"))`,
			want: []Reference{{Path: "logo.png", Kind: RefAsset}},
		},
		{
			name: "read asset with spaces",
			text: `#let data = read ( "data/table.csv" )`,
			want: []Reference{{Path: "data/table.csv", Kind: RefAsset}},
		},
		{
			name: "imports listed before assets",
			text: `image("a.png")` + "\n" + `#import "b.typ"`,
			want: []Reference{
				{Path: "b.typ", Kind: RefImport},
				{Path: "a.png", Kind: RefAsset},
			},
		},
		{
			name: "registry import kept literal",
			text: `#import "@preview/cetz:0.2.0"`,
			want: []Reference{{Path: "@preview/cetz:0.2.0", Kind: RefImport}},
		},
		{
			name: "dynamically built path is missed",
			text: `#import "lib" + suffix` + "\n" + `image(logo-var)`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ScanReferences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanReferences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanReferences_Restartable(t *testing.T) {
	t.Parallel()

	text := `#import "a.typ"` + "\n" + `image("b.png")`
	first := ScanReferences(text)
	second := ScanReferences(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scans differ: %v vs %v", first, second)
	}
}
