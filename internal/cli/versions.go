package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dephub/dephub-semver/providers/versioneer"
	"github.com/spf13/cobra"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse VERSION...",
		Short: "Print the components of semantic versions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseAll(args)
			if err != nil {
				return err
			}
			infos := make([]versionInfo, 0, len(vs))
			for _, v := range vs {
				infos = append(infos, newVersionInfo(v))
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, infos, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tMAJOR\tMINOR\tPATCH\tPRERELEASE\tBUILD")
				for _, info := range infos {
					ids := make([]string, 0, len(info.Prerelease))
					for _, id := range info.Prerelease {
						ids = append(ids, fmt.Sprintf("%s(%s)", id.Value, id.Kind))
					}
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n", info.Version, info.Major, info.Minor, info.Patch,
						orDash(strings.Join(ids, ".")), orDash(strings.Join(info.Build, ".")))
				}
				return tw.Flush()
			})
		},
	}
}

// comparison is the output form of compare.
type comparison struct {
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Result string `json:"result" yaml:"result"`
	Value  int    `json:"value" yaml:"value"`
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare the precedence of two versions",
		Long:  "Compare prints '<', '=' or '>' depending on the precedence of A relative to B. Build metadata is ignored.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseAll(args)
			if err != nil {
				return err
			}
			o := versioneer.Compare(vs[0], vs[1])
			a.logger.Debug("compared", "a", vs[0], "b", vs[1], "result", o)

			out := comparison{A: vs[0].String(), B: vs[1].String(), Result: o.String(), Value: int(o)}
			return render(cmd.OutOrStdout(), a.cfg.Format, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, o)
				return err
			})
		},
	}
}

func (a *app) precedesCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "precedes A B",
		Short: "Exit with status 0 when A has lower precedence than B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseAll(args)
			if err != nil {
				return err
			}
			precedes := versioneer.Precedes(vs[0], vs[1])
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), precedes)
			}
			if !precedes {
				return &ExitError{Code: ExitFailure}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the result, only set the exit status")
	return cmd
}

func (a *app) sortCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "sort [VERSION...]",
		Short: "Sort versions by precedence",
		Long:  "Sort versions given as arguments, or one per line on stdin, in ascending precedence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			vs, err := parseAll(raw)
			if err != nil {
				return err
			}
			versioneer.Sort(vs)
			if reverse {
				for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
					vs[i], vs[j] = vs[j], vs[i]
				}
			}
			return renderVersions(cmd.OutOrStdout(), a.cfg.Format, vs)
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort in descending precedence")
	return cmd
}

func (a *app) latestCmd() *cobra.Command {
	var prerelease bool
	cmd := &cobra.Command{
		Use:   "latest [VERSION...]",
		Short: "Print the highest version",
		Long:  "Print the version with the highest precedence. Prereleases are skipped unless --prerelease is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("prerelease") {
				prerelease = a.cfg.IncludePrerelease
			}
			raw, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			vs, err := parseAll(raw)
			if err != nil {
				return err
			}
			latest, ok := versioneer.Latest(vs, prerelease)
			if !ok {
				return errors.New("no eligible version")
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, latest, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, latest)
				return err
			})
		},
	}
	cmd.Flags().BoolVarP(&prerelease, "prerelease", "p", false, "consider prerelease versions")
	return cmd
}

// validation is the output form of one validate result.
type validation struct {
	Input   string `json:"input" yaml:"input"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Part    string `json:"part,omitempty" yaml:"part,omitempty"`
	Segment string `json:"segment,omitempty" yaml:"segment,omitempty"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [VERSION...]",
		Short: "Check versions against the semantic versioning grammar",
		Long:  "Validate reports every input with the reason it was rejected. Exits with status 2 when any input is invalid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			results := make([]validation, 0, len(raw))
			invalid := 0
			for _, s := range raw {
				res := validation{Input: s, Valid: true}
				var perr *versioneer.ParseError
				if _, err := versioneer.Parse(s); errors.As(err, &perr) {
					res = validation{Input: s, Part: string(perr.Part), Segment: perr.Segment, Reason: string(perr.Reason)}
					invalid++
				}
				results = append(results, res)
			}

			err = render(cmd.OutOrStdout(), a.cfg.Format, results, func(w io.Writer) error {
				for _, res := range results {
					if res.Valid {
						fmt.Fprintf(w, "%q: valid\n", res.Input)
						continue
					}
					fmt.Fprintf(w, "%q: %s segment %q: %s\n", res.Input, res.Part, res.Segment, res.Reason)
				}
				return nil
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				a.logger.Debug("validation failed", "invalid", invalid, "total", len(raw))
				return &ExitError{Code: ExitInvalidFormat}
			}
			return nil
		},
	}
}

// readInputs returns args, or the non-empty lines of stdin when no args are given.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, errors.New("no versions provided")
	}
	return lines, nil
}

func parseAll(raw []string) ([]versioneer.Version, error) {
	vs := make([]versioneer.Version, 0, len(raw))
	for _, s := range raw {
		v, err := versioneer.Parse(s)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func renderVersions(w io.Writer, format string, vs []versioneer.Version) error {
	return render(w, format, vs, func(w io.Writer) error {
		for _, v := range vs {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
