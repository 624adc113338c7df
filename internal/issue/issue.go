// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NotAPackageId Id = iota + 1
	InvalidManifestId
	MissingFileId
	AcquisitionFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links to docs about this issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	notAPackageIssue = &Issue{
		id: NotAPackageId,
		mdMsg: `
# No typst.toml found!

The directory you pointed at does not contain a package manifest.

## Things you can try:
- Check that the path points at the package root, not a parent or subdirectory
- Create a manifest in the package root:
~~~toml
[package]
name = "mypackage"
version = "0.1.0"
entrypoint = "main.typ"
~~~`,
		extLinks: []HttpLink{
			"https://github.com/typst/packages#package-format",
		},
	}

	invalidManifestIssue = &Issue{
		id: InvalidManifestId,
		mdMsg: `
# Invalid typst.toml!

The manifest exists but is structurally wrong.

## Common issues:
- Invalid TOML syntax (missing quotes, brackets, etc.)
- Missing [package] section
- Missing one of the required fields: name, version, entrypoint
- A [template] section that declares only one of path/entrypoint

## Example of a valid manifest:
~~~toml
[package]
name = "mypackage"
version = "0.1.0"
entrypoint = "main.typ"
exclude = ["*.pdf", "examples/*"]

[template]
path = "template"
entrypoint = "main.typ"
~~~`,
	}

	missingFileIssue = &Issue{
		id: MissingFileId,
		mdMsg: `
# Missing imported file!

A file referenced by an ` + "`#import`" + ` directive does not exist in the package.

## Things you can try:
- Check the import path for typos (paths are relative to the importing file)
- If the file was moved, update the import directives that reference it
- If the import targets another package, use the registry form instead:
~~~typst
#import "@preview/example:0.1.0": *
~~~

Note: missing ` + "`image(...)`" + ` or ` + "`read(...)`" + ` assets are skipped
silently, only imports are required to exist.`,
	}

	acquisitionFailedIssue = &Issue{
		id: AcquisitionFailedId,
		mdMsg: `
# Failed to fetch the package source!

The repository behind the ` + "`git+`" + ` reference could not be cloned.

## Things you can try:
- Check the clone URL for typos
- Verify the repository is reachable from your network
- For private repositories, make sure your credentials are configured
- Increase the clone timeout in your config file:
~~~toml
clone_timeout_seconds = 300
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the typi configuration file.

## Configuration file locations:
- Linux: ~/.config/typi/config.toml
- macOS: ~/Library/Application Support/typi/config.toml
- Windows: %APPDATA%\typi\config.toml

## Things you can try:
- Check the TOML syntax of the file
- Remove the config file to fall back to defaults

## Example configuration:
~~~toml
cache_root = "/home/user/.local/share/typst/packages/local"
clone_timeout_seconds = 120

[ui]
verbose = false
~~~`,
	}

	issues = map[Id]*Issue{
		notAPackageIssue.Id():       notAPackageIssue,
		invalidManifestIssue.Id():   invalidManifestIssue,
		missingFileIssue.Id():       missingFileIssue,
		acquisitionFailedIssue.Id(): acquisitionFailedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
