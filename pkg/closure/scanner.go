// SPDX-License-Identifier: MPL-2.0

package closure

import "regexp"

type (
	// RefKind distinguishes import references (must exist, scanned if source)
	// from asset references (copied but never scanned, skipped if absent).
	RefKind string

	// Reference is a cross-reference discovered in a source file's text.
	// The path is literal directive text, relative to the directory of the
	// file it was found in; references exist only transiently during traversal.
	Reference struct {
		// Path is the referenced path exactly as written in the directive.
		Path string
		// Kind tags the reference as an import or an asset.
		Kind RefKind
	}
)

const (
	// RefImport marks an `#import "<path>"` directive.
	RefImport RefKind = "import"
	// RefAsset marks an `image("<path>")` or `read("<path>")` call.
	RefAsset RefKind = "asset"
)

var (
	importPattern = regexp.MustCompile(`#import\s+"([^"]+)"`)
	assetPattern  = regexp.MustCompile(`(image|read)\s*\(\s*"([^"]+)"\s*\)`)
)

// ScanReferences extracts import and asset references from file text.
//
// The text is treated as opaque: no syntax evaluation happens, so
// dynamically constructed paths (string concatenation, variables) are missed
// or misread. This is an accepted approximation inherited from the directive
// format, not a defect to fix here.
//
// The scanner keeps no state between calls; scanning the same text always
// yields the same references.
func ScanReferences(text string) []Reference {
	var refs []Reference

	for _, m := range importPattern.FindAllStringSubmatch(text, -1) {
		refs = append(refs, Reference{Path: m[1], Kind: RefImport})
	}

	for _, m := range assetPattern.FindAllStringSubmatch(text, -1) {
		refs = append(refs, Reference{Path: m[2], Kind: RefAsset})
	}

	return refs
}
