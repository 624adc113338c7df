// SPDX-License-Identifier: MPL-2.0

// Package cache materializes resolved package file sets into the local
// package cache and enumerates what is installed there.
//
// The cache layout is <cacheRoot>/<name>/<version>/..., mirroring each
// package's internal relative layout. Entries are created on first install,
// overwritten file-by-file on update, and never partially removed: stale
// files from a previous package layout may persist across updates.
package cache
