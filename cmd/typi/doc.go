// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the typi CLI: a single root command that installs a
// Typst package into the local cache, plus a listing mode for what is
// already installed.
package cmd
