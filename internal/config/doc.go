// SPDX-License-Identifier: MPL-2.0

// Package config resolves the installer's configuration: the local package
// cache root, the clone timeout, and UI preferences.
//
// The cache root is computed once here and passed down explicitly to the
// collector and materializer; nothing else in the codebase reads ambient
// environment state. Resolution order: TYPI_PACKAGE_PATH environment
// variable, then the config file, then the platform user-data directory.
package config
