// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"typi-cli/internal/app/install"
	"typi-cli/internal/config"
	"typi-cli/internal/issue"
	"typi-cli/pkg/source"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runInstall acquires the package source, installs it into the cache, and
// reports the outcome. A clone cleanup runs on every exit path.
func runInstall(c *cobra.Command, cfg *config.Config, sourceArg string) error {
	ref := source.ParseRef(sourceArg)

	acquirer := source.NewAcquirer()
	acquirer.Timeout = cfg.CloneTimeout()

	dir, cleanup, err := acquirer.Acquire(c.Context(), ref)
	defer cleanup()
	if err != nil {
		return renderInstallError(err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "typi",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	res, err := install.New(cfg.CacheRoot, update, logger).Install(dir)
	if err != nil {
		var notice *issue.AlreadyInstalledNotice
		if errors.As(err, &notice) {
			fmt.Fprintln(c.OutOrStdout(),
				WarningStyle.Render("Skipped: ")+
					PackageStyle.Render(notice.Name+":"+notice.Version)+
					" is already installed (use --update to overwrite)")
			return nil
		}
		return renderInstallError(err)
	}

	verb := "Installed"
	if res.Updated {
		verb = "Updated"
	}
	fmt.Fprintln(c.OutOrStdout(),
		SuccessStyle.Render(verb+": ")+
			PackageStyle.Render(res.Name+":"+res.Version)+
			SubtitleStyle.Render(fmt.Sprintf(" (%d files)", len(res.Copied))))

	if verbose {
		for _, rel := range res.Copied {
			fmt.Fprintln(c.OutOrStdout(), SubtitleStyle.Render("  "+rel))
		}
	}
	return nil
}

// renderInstallError prints the guidance card for known failure modes before
// handing the error back to the command runner.
func renderInstallError(err error) error {
	if id, ok := issueIDFor(err); ok {
		rendered, _ := issue.Get(id).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
	}
	return err
}

// issueIDFor maps domain errors to their guidance cards.
func issueIDFor(err error) (issue.Id, bool) {
	var (
		notAPackage     *issue.NotAPackageError
		invalidManifest *issue.InvalidManifestError
		missingFile     *issue.MissingFileError
		acquisition     *issue.AcquisitionError
	)
	switch {
	case errors.As(err, &notAPackage):
		return issue.NotAPackageId, true
	case errors.As(err, &invalidManifest):
		return issue.InvalidManifestId, true
	case errors.As(err, &missingFile):
		return issue.MissingFileId, true
	case errors.As(err, &acquisition):
		return issue.AcquisitionFailedId, true
	}
	return 0, false
}
