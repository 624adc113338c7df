// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines the installer's error taxonomy (missing manifest, invalid
// manifest, missing imported file, failed source acquisition) together with
// remediation steps and Markdown-formatted guidance, improving the user
// experience when errors occur during CLI operations.
package issue
