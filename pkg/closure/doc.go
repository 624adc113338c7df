// SPDX-License-Identifier: MPL-2.0

// Package closure computes the dependency-closure file set of a package.
//
// Starting from the manifest entrypoint, the collector scans source files for
// import and asset directives, resolves the referenced paths, and walks the
// implicit file-reference graph with an explicit work stack and a
// discovered-set guard, so cyclic and diamond-shaped import graphs terminate
// deterministically. The resulting set is pruned by the manifest's exclude
// globs and extended with the fixed auxiliary files (manifest, readme,
// license, top-level assets, template entrypoint).
package closure
