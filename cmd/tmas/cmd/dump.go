package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpOpts classificationOptions

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print the records of an exchange file as YAML",
	Long: `Dump decodes a file with the format named by its extension and prints
each record as a YAML document. Coded fields are printed by name.

Example:
  tmas dump 17000042032021.sta`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := dumpFile(cmd.OutOrStdout(), args[0], &dumpOpts)
		logger.Debug("dumped file", "file", args[0], "records", n)
		return err
	},
}

func init() {
	dumpOpts.addFlags(dumpCmd)
	rootCmd.AddCommand(dumpCmd)
}

// dumpFile writes each record of path to w as a YAML document and returns
// the number written. It stops at the first line that fails to decode.
func dumpFile(w io.Writer, path string, opts *classificationOptions) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	src, err := newRecordSource(path, f, opts)
	if err != nil {
		return 0, err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	n := 0
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, errors.Wrap(err, path)
		}
		if err := enc.Encode(rec); err != nil {
			return n, err
		}
		n++
	}
	return n, enc.Close()
}
