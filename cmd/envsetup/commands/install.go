package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RodrigoSpano/envsetup/internal/app"
	"github.com/RodrigoSpano/envsetup/internal/ui/output"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Copy the validator module into the host project and reconcile its dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			ownManifest, _ := cmd.Flags().GetString("own-manifest")
			skipInstall, _ := cmd.Flags().GetBool("skip-install")

			report, err := c.app.Install(cmd.Context(), app.InstallOptions{
				Dir:         dir,
				OwnManifest: ownManifest,
				SkipInstall: skipInstall,
			})
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringP("dir", "d", ".", "Directory to start the project root search from")
	cmd.Flags().String("own-manifest", "", "Path of this utility's own manifest (defaults to its copy in the host's dependency storage)")
	cmd.Flags().Bool("skip-install", false, "Reconcile and report without invoking the package manager")

	return cmd
}

func printReport(w io.Writer, report *app.InstallReport) {
	out := output.New(w)
	mark := out.String("✓").Foreground(out.Color("2")).String()

	fmt.Fprintf(w, "%s project root   %s\n", mark, report.Root)
	fmt.Fprintf(w, "%s package manager %s\n", mark, report.PackageManager)

	if report.File.UpToDate {
		fmt.Fprintf(w, "%s %s already up to date\n", mark, report.File.Path)
	} else {
		fmt.Fprintf(w, "%s copied %s\n", mark, report.File.Path)
	}

	switch {
	case len(report.Missing) == 0:
		fmt.Fprintf(w, "%s dependencies already satisfied\n", mark)
	case report.Installed:
		fmt.Fprintf(w, "%s installed %d missing dependencies\n", mark, len(report.Missing))
	default:
		skip := out.String("-").Foreground(out.Color("3")).String()
		fmt.Fprintf(w, "%s skipped %d missing dependencies\n", skip, len(report.Missing))
	}
}
