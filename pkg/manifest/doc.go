// SPDX-License-Identifier: MPL-2.0

// Package manifest loads and validates typst.toml package manifests.
//
// A manifest declares the package identity (name, version), the entrypoint
// source file from which the dependency closure is collected, optional
// exclude glob patterns, and an optional template block. Manifests are
// immutable once loaded.
package manifest
