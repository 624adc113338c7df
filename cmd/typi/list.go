// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"typi-cli/internal/config"
	"typi-cli/pkg/cache"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// runList prints the installed packages as a two-column table.
func runList(c *cobra.Command, cfg *config.Config) error {
	installed, err := cache.List(cfg.CacheRoot)
	if err != nil {
		return err
	}

	if len(installed) == 0 {
		fmt.Fprintln(c.OutOrStdout(), SubtitleStyle.Render("No packages installed in ")+cfg.CacheRoot)
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtitleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Package", "Versions")

	for _, pkg := range installed {
		t.Row(pkg.Name, strings.Join(pkg.Versions, ", "))
	}

	fmt.Fprintln(c.OutOrStdout(), t.Render())
	return nil
}
