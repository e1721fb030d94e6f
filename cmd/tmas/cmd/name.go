package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wallaceicy06/go-tmas"
)

var (
	nameFile tmas.FileName
	nameKind string
	namePath bool
)

// nameCmd represents the name command
var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Print the exchange file name for a station and month",
	Long: `Name prints the SSIIIIIIMMYYYY.ext file name holding one kind of record
for a station and month. With --path the name is joined to TMAS_DATA_DIR.

Example:
  tmas name --state 17 --station 42 --month 3 --year 2021 --kind vol`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := parseKind(nameKind)
		if err != nil {
			return err
		}
		var name string
		if namePath {
			name, err = nameFile.Path(cfg.DataDir, k)
		} else {
			name, err = nameFile.Name(k)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	nameCmd.Flags().Var(stateValue{&nameFile.State}, "state", "two digit state code")
	nameCmd.Flags().StringVar(&nameFile.StationID, "station", "", "station id, up to 6 characters")
	nameCmd.Flags().IntVar(&nameFile.Month, "month", 0, "month, 1-12")
	nameCmd.Flags().IntVar(&nameFile.Year, "year", 0, "four digit year")
	nameCmd.Flags().StringVar(&nameKind, "kind", "", "record kind: sta, vol, cla, spd or wgt")
	nameCmd.Flags().BoolVar(&namePath, "path", false, "print the path under the data directory")
	for _, f := range []string{"state", "station", "month", "year", "kind"} {
		_ = nameCmd.MarkFlagRequired(f)
	}
	rootCmd.AddCommand(nameCmd)
}

// parseKind accepts a file extension or a kind's name.
func parseKind(s string) (tmas.Kind, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if k, ok := tmas.KindForExtension(s); ok {
		return k, nil
	}
	for _, k := range tmas.Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown record kind %q", s)
}

// stateValue is a pflag.Value holding a state code.
type stateValue struct{ s *tmas.State }

func (v stateValue) String() string {
	if v.s == nil || *v.s == 0 {
		return ""
	}
	return fmt.Sprintf("%02d", int(*v.s))
}

func (v stateValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Errorf("invalid state code %q", s)
	}
	st := tmas.State(n)
	if !st.Valid() {
		return errors.Errorf("unknown state code %d", n)
	}
	*v.s = st
	return nil
}

func (v stateValue) Type() string { return "code" }
