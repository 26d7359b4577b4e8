package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hhkbp2/yawg"
	"github.com/spf13/cobra"
)

var (
	ProgramName = filepath.Base(os.Args[0])
)

// Arguments holds the options shared by all commands.
type Arguments struct {
	PropertyFile   string
	PropertyValues []string
	ExportToStderr bool
	Seed           int64
}

func (self *Arguments) Bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&self.PropertyFile, "property-file", "P", "", "specify a property file")
	flags.StringArrayVarP(&self.PropertyValues, "property", "p", nil, "specify a property value, in name=value form")
	flags.BoolVarP(&self.ExportToStderr, "stderr", "s", false, "print the measurements to stderr")
	flags.Int64Var(&self.Seed, "seed", 0, "seed of the random source, 0 picks one from the clock (can also set the \"seed\" property)")
}

// Properties merges the property file, the -p values and the seed option,
// later ones overriding earlier ones.
func (self *Arguments) Properties(cmd *cobra.Command) (yawg.Properties, error) {
	props := yawg.NewProperties()
	if len(self.PropertyFile) > 0 {
		propsFromFile, err := yawg.LoadProperties(self.PropertyFile)
		if err != nil {
			return nil, err
		}
		props.Merge(propsFromFile)
	}
	for _, arg := range self.PropertyValues {
		k, v, err := yawg.ParseProperty(arg)
		if err != nil {
			return nil, err
		}
		props.Add(k, v)
	}
	if cmd.Flags().Changed("seed") {
		props.Add(yawg.PropertySeed, strconv.FormatInt(self.Seed, 10))
	}
	return props, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// ExportDest opens the destination of the measurement export.
func (self *Arguments) ExportDest(props yawg.Properties) (io.WriteCloser, error) {
	if self.ExportToStderr {
		return nopCloser{os.Stderr}, nil
	}
	if filename := props.Get(yawg.PropertyExportFile); len(filename) > 0 {
		return os.Create(filename)
	}
	return nopCloser{os.Stdout}, nil
}

func ExitOnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
