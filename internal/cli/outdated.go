package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dephub/dephub-semver/dephub"
	"github.com/spf13/cobra"
)

// outdatedOptions holds the outdated command flags.
type outdatedOptions struct {
	dir         string
	locked      string
	releases    []string
	prerelease  bool
	skipInvalid bool
	dev         bool
}

func (a *app) outdatedCmd() *cobra.Command {
	opts := &outdatedOptions{}
	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "Report locked dependencies with newer releases",
		Long: `Outdated reads locked dependency versions and known releases from files in a
directory and lists every package for which a newer release exists.

Sources are given as TYPE[:FILE[:PACKAGE]], where TYPE is one of
composer, text, manifest or github-releases.

Examples:
  dephub-semver outdated --locked composer --releases manifest:versions.yaml
  dephub-semver outdated --locked text:locked.txt --releases github-releases:releases.json:acme/http`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("prerelease") {
				opts.prerelease = a.cfg.IncludePrerelease
			}
			return a.runOutdated(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "directory holding the source files")
	cmd.Flags().StringVarP(&opts.locked, "locked", "l", string(dephub.ComposerType), "source of locked versions")
	cmd.Flags().StringArrayVarP(&opts.releases, "releases", "r", nil, "source of available releases (repeatable)")
	cmd.Flags().BoolVarP(&opts.prerelease, "prerelease", "p", false, "consider prerelease versions as updates")
	cmd.Flags().BoolVar(&opts.skipInvalid, "skip-invalid", false, "skip entries whose version is not a semantic version")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "include Composer development packages")
	_ = cmd.MarkFlagRequired("releases")

	return cmd
}

func (a *app) runOutdated(cmd *cobra.Command, opts *outdatedOptions) error {
	ctx := cmd.Context()
	src := dephub.NewDirSource(opts.dir)

	lockedSpec, err := dephub.ParseSourceSpec(opts.locked)
	if err != nil {
		return err
	}
	lockedSpec.Options.IncludeDev = opts.dev
	lockedSpec.Options.SkipInvalid = opts.skipInvalid

	specs := make([]dephub.SourceSpec, 0, len(opts.releases))
	for _, s := range opts.releases {
		spec, err := dephub.ParseSourceSpec(s)
		if err != nil {
			return err
		}
		spec.Options.SkipInvalid = opts.skipInvalid
		specs = append(specs, spec)
	}

	locked, err := src.Requirements(ctx, lockedSpec.Type, &lockedSpec.Options)
	if err != nil {
		return fmt.Errorf("unable to read locked versions: %w", err)
	}
	a.logger.Info("locked versions loaded", "source", lockedSpec.Type, "packages", len(locked))

	catalog, err := dephub.LoadCatalog(ctx, src, specs...)
	if err != nil {
		return err
	}
	a.logger.Info("releases loaded", "sources", len(specs), "packages", len(catalog.Names()))

	checker := dephub.NewUpdatesChecker(catalog, a.logger)
	updates, err := checker.LastUpdates(ctx, locked, dephub.CheckOptions{
		IncludePrerelease: opts.prerelease,
		Concurrency:       a.cfg.Concurrency,
	})
	if err != nil {
		return err
	}
	if updates == nil {
		updates = []dephub.Update{}
	}

	return render(cmd.OutOrStdout(), a.cfg.Format, updates, func(w io.Writer) error {
		if len(updates) == 0 {
			_, err := fmt.Fprintln(w, "all packages are up to date")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PACKAGE\tCURRENT\tLATEST\tNOTE")
		for _, u := range updates {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Name, u.CurrentVersion, u.Version, updateNote(u))
		}
		return tw.Flush()
	})
}

func updateNote(u dephub.Update) string {
	var notes []string
	if u.Major {
		notes = append(notes, "major")
	}
	if u.Prerelease {
		notes = append(notes, "prerelease")
	}
	return orDash(strings.Join(notes, ","))
}
