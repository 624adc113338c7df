// SPDX-License-Identifier: MPL-2.0

// Package install orchestrates one package installation: manifest load,
// closure collection, exclude filtering, auxiliary inclusion, and cache
// materialization, in that order. All validation happens before any file is
// written to the cache.
package install
