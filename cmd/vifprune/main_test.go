package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vifprune/dataset"
	"github.com/katalvlaran/vifprune/vif"
)

const collinearCSV = `A,B,C
1,1,2
2,-1,4
3,-1,6
4,1,8
5,1,10
6,-1,12
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRun_WritesReducedTable(t *testing.T) {
	in := writeFile(t, "in.csv", collinearCSV)
	out := filepath.Join(t.TempDir(), "out.csv")

	stdout, stderr, err := execute(t, "run", "-i", in, "-o", out, "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Dropped features")
	assert.Contains(t, stdout, "infinite")
	assert.Contains(t, stdout, "kept 2 of 3 features in 2 rounds")
	assert.Contains(t, stderr, `"message":"reduced table written"`)

	reduced, err := dataset.LoadCSV(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, reduced.Names())
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	in := writeFile(t, "in.csv", collinearCSV)
	cfg := writeFile(t, "cfg.yaml", "threshold: 3\nprotected: [A]\nsolver: gonum\nlog: {level: error, format: json}\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	_, stderr, err := execute(t, "run", "--config", cfg, "-i", in, "-o", out, "--batch-infinite", "--protect", "A, C")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	reduced, err := dataset.LoadCSV(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, reduced.Names())
}

func TestRun_Errors(t *testing.T) {
	in := writeFile(t, "in.csv", collinearCSV)

	_, _, err := execute(t, "run")
	assert.Error(t, err, "missing --input")

	_, _, err = execute(t, "run", "-i", in, "--threshold", "-2")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "-i", in, "--solver", "magic")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "-i", in, "--protect", "ghost", "--strict-protected", "--log-level", "error")
	assert.ErrorContains(t, err, "protected feature not in table")

	clash := writeFile(t, "clash.csv", "x,const\n1,3\n2,-1\n3,4\n4,0\n")
	_, _, err = execute(t, "run", "-i", clash, "--log-level", "error")
	assert.ErrorIs(t, err, vif.ErrConstantClash)

	bad := writeFile(t, "bad.csv", "a,b\n1,x\n")
	_, _, err = execute(t, "run", "-i", bad)
	assert.ErrorContains(t, err, "non-numeric")
}

func TestScore_PrintsAllColumns(t *testing.T) {
	in := writeFile(t, "in.csv", "x1,x2\n1,2\n2,1\n3,4\n4,3\n5,5\n")

	stdout, _, err := execute(t, "score", "-i", in, "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, stdout, "x1")
	assert.Contains(t, stdout, "2.778")
	assert.Contains(t, stdout, "6.000")
	assert.Contains(t, stdout, "protected")

	nan := writeFile(t, "nan.csv", "a,b\n1,2\nNaN,3\n4,5\n")
	_, _, err = execute(t, "score", "-i", nan, "--log-level", "warn")
	assert.ErrorIs(t, err, vif.ErrNonFinite)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, appName+" "+version+"\n", stdout)
}
