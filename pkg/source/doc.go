// SPDX-License-Identifier: MPL-2.0

// Package source resolves a package source reference into a local, readable
// directory for the duration of one install operation.
//
// A reference is either a filesystem path, used in place, or a "git+<url>"
// reference, satisfied by a shallow depth-1 clone into a temporary directory
// that is removed when the operation ends, on success or failure.
package source
