package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
	"github.com/hhkbp2/yawg"
	"github.com/spf13/cobra"
)

func runCommand(t *testing.T, args ...string) error {
	root := newRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func TestPropertiesPrecedence(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "workload.yaml")
	require.Nil(t, ioutil.WriteFile(filename, []byte("recordcount: 10\nseed: 1\nfilecount: 2\n"), 0644))
	args := &Arguments{}
	cmd := &cobra.Command{Use: "get"}
	args.Bind(cmd)
	require.Nil(t, cmd.ParseFlags([]string{"-P", filename, "-p", "recordcount=20", "--seed", "3"}))
	props, err := args.Properties(cmd)
	require.Nil(t, err)
	require.Equal(t, "20", props.Get(yawg.PropertyRecordCount))
	require.Equal(t, "2", props.Get(yawg.PropertyFileCount))
	require.Equal(t, "3", props.Get(yawg.PropertySeed))

	args = &Arguments{}
	cmd = &cobra.Command{Use: "get"}
	args.Bind(cmd)
	require.Nil(t, cmd.ParseFlags([]string{"-P", filename}))
	props, err = args.Properties(cmd)
	require.Nil(t, err)
	require.Equal(t, "1", props.Get(yawg.PropertySeed))

	args = &Arguments{PropertyValues: []string{"recordcount"}}
	_, err = args.Properties(cmd)
	require.NotNil(t, err)
}

func TestGetCommand(t *testing.T) {
	dir := t.TempDir()
	exportFile := filepath.Join(dir, "export.json")
	err := runCommand(t, "get",
		"-p", "output.dir="+dir,
		"-p", "recordcount=5",
		"-p", "exportfile="+exportFile,
		"-p", "exporter=JSONArrayMeasurementExporter",
		"-p", "log.level=error",
		"--seed", "7")
	require.Nil(t, err)
	for _, name := range []string{"get_1.txt", "get_2.txt", "get_3.txt"} {
		b, err := ioutil.ReadFile(filepath.Join(dir, name))
		require.Nil(t, err)
		lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
		require.Equal(t, 5, len(lines))
	}
	b, err := ioutil.ReadFile(exportFile)
	require.Nil(t, err)
	var exported []map[string]interface{}
	require.Nil(t, json.Unmarshal(b, &exported))
	require.Equal(t, "RUN", exported[0]["metric"])
	require.Equal(t, "ID", exported[0]["measurement"])
	metrics := make(map[string]bool)
	for _, e := range exported {
		metrics[e["metric"].(string)] = true
	}
	require.True(t, metrics["GET"])
	require.True(t, metrics["FILE"])
}

func TestSeedMakesRunsReproducible(t *testing.T) {
	content := func() string {
		dir := t.TempDir()
		err := runCommand(t, "range",
			"-p", "output.dir="+dir,
			"-p", "filecount=1",
			"-p", "exportfile="+filepath.Join(dir, "export.txt"),
			"-p", "log.level=error",
			"--seed", "11")
		require.Nil(t, err)
		b, err := ioutil.ReadFile(filepath.Join(dir, "range_get_1.txt"))
		require.Nil(t, err)
		return string(b)
	}
	first := content()
	require.Equal(t, 500, strings.Count(first, "\n"))
	require.Equal(t, first, content())
}

func TestSampleCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.Nil(t, ioutil.WriteFile(input, []byte("p 1 1\np 2 2\np 3 3\n"), 0644))
	err := runCommand(t, "sample", input,
		"-p", "output.dir="+dir,
		"-p", "filecount=1",
		"-p", "sampler.oldcount=2",
		"-p", "sampler.newcount=1",
		"-p", "exportfile="+filepath.Join(dir, "export.txt"),
		"-p", "log.level=error")
	require.Nil(t, err)
	b, err := ioutil.ReadFile(filepath.Join(dir, "get_1.txt"))
	require.Nil(t, err)
	require.Equal(t, 3, strings.Count(string(b), "g "))

	err = runCommand(t, "sample", input,
		"-p", "output.dir="+dir,
		"-p", "sampler.oldcount=4",
		"-p", "log.level=error")
	require.NotNil(t, err)
}

func TestClientsCommand(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, runCommand(t, "clients", "2", "-p", "output.dir="+dir, "-p", "log.level=error"))
	b, err := ioutil.ReadFile(filepath.Join(dir, "client_input0.txt"))
	require.Nil(t, err)
	require.Equal(t, "l workloads/load_2_0.dat\ncq", string(b))

	require.NotNil(t, runCommand(t, "clients", "two"))
	require.NotNil(t, runCommand(t, "clients"))
}

func TestUnknownSettings(t *testing.T) {
	require.NotNil(t, runCommand(t, "get", "-p", "log.level=loud"))
	require.NotNil(t, runCommand(t, "get", "-p", "measurementtype=timeseries", "-p", "log.level=error"))
	require.NotNil(t, runCommand(t, "get", "-p", "keydistribution=latest", "-p", "log.level=error"))
	require.NotNil(t, runCommand(t, "get", "-P", "missing.yaml"))
}

func TestReportLogsSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	yawg.SetLogOutput(buf)
	defer yawg.SetLogOutput(os.Stderr)
	yawg.SetLogLevel(yawg.LevelInfo)

	m, err := yawg.NewDefaultMeasurements(yawg.NewProperties())
	require.Nil(t, err)
	m.Measure("GET", 1000)
	env := &Environment{Start: time.Now(), Measurements: m}
	env.report([]string{"get_1.txt"})
	out := buf.String()
	require.True(t, strings.Contains(out, "1 files written"))
	require.True(t, strings.Contains(out, "summary [GET: Count=1,"))
}
