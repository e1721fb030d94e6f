package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Exchange file lines for station 1811B in Illinois.
const (
	stationLine   = "S1701811B1020121R4Y4323F030  2LLP00000000000000000000000000000000000000000000000880IR5T4RE3480078560039178751088352540          1945    049N            Y0200000708.5 miles past Steven City near County Line Road   "
	volumeLine    = "3172R01710A90201204254000460002200014000130002900030000750013600179002180026400293003220040100439          003660026100202001430009800054000220"
	weightLine    = "W1701811B11201204250809   00072505001020014200165000430015800330001500004100150"
	classLine     = "C1701811B112012042500 000990000510004800010"
	speedLinePart = "T17018114112012062000A 1500375000000000000000000000000000000000070001200048001650008600031000210000500000"
)

func padLine(s string, n int) string { return s + strings.Repeat(" ", n-len(s)) }

// writeFile writes lines to name in a temporary directory and returns its
// path.
func writeFile(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}
