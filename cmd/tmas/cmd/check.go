package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	checkRoundTrip bool
	checkOpts      classificationOptions
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check that every line of exchange files decodes",
	Long: `Check decodes every line of each file with the format named by its
extension and reports the lines that fail.

With --roundtrip each decoded record is encoded again and compared with the
original line.

Example:
  tmas check --roundtrip 17000042032021.vol
  tmas check --station 17000042032021.sta 17000042032021.cla`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var checked, failed int
		for _, path := range args {
			c, f, err := checkFile(cmd.OutOrStdout(), path, checkRoundTrip, &checkOpts)
			if err != nil {
				return err
			}
			logger.Info("checked file", "file", path, "records", c, "failed", f)
			checked += c
			failed += f
		}
		if failed > 0 {
			return errors.Errorf("%d of %d lines failed", failed, checked+failed)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkRoundTrip, "roundtrip", false, "verify each record re-encodes to its original line")
	checkOpts.addFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

// checkFile decodes every line of path, writing a report line to w for each
// failure. It returns the number of good and failed lines.
func checkFile(w io.Writer, path string, roundTrip bool, opts *classificationOptions) (checked, failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	src, err := newRecordSource(path, f, opts)
	if err != nil {
		return 0, 0, err
	}
	logger.Debug("checking file", "file", path, "kind", src.Kind().String())

	for {
		rec, err := src.Next()
		if err == io.EOF {
			return checked, failed, nil
		}
		if err != nil {
			if !isRecordError(err) {
				return checked, failed, errors.Wrap(err, path)
			}
			failed++
			fmt.Fprintf(w, "%s: %v\n", path, err)
			continue
		}

		if roundTrip {
			line, err := src.Encode(rec)
			if err != nil {
				failed++
				fmt.Fprintf(w, "%s: line %d: %v\n", path, src.Line(), err)
				continue
			}
			if col := firstDifference(line, src.Text()); col > 0 {
				failed++
				fmt.Fprintf(w, "%s: line %d: re-encoded line differs from column %d\n", path, src.Line(), col)
				continue
			}
		}
		checked++
	}
}

// firstDifference returns the 1-based column of the first difference
// between a and b, or 0 when they are equal.
func firstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i + 1
		}
	}
	if len(a) != len(b) {
		return n + 1
	}
	return 0
}
