package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hhkbp2/yawg"
	g "github.com/hhkbp2/yawg/generator"
	"github.com/hhkbp2/yawg/workload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Environment is what every command works with once the options are parsed.
type Environment struct {
	Props        yawg.Properties
	RunID        string
	Start        time.Time
	Random       *rand.Rand
	Measurements *yawg.DefaultMeasurements
}

func newEnvironment(args *Arguments, cmd *cobra.Command) (*Environment, error) {
	props, err := args.Properties(cmd)
	if err != nil {
		return nil, err
	}
	if err := yawg.SetLogLevelByName(props.GetDefault(yawg.PropertyLogLevel, yawg.PropertyLogLevelDefault)); err != nil {
		return nil, err
	}
	seed, err := props.GetInt64(yawg.PropertySeed, yawg.PropertySeedDefault)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := yawg.NewDefaultMeasurements(props)
	if err != nil {
		return nil, err
	}
	env := &Environment{
		Props:        props,
		RunID:        uuid.New().String(),
		Start:        time.Now(),
		Random:       g.NewRandom(seed),
		Measurements: m,
	}
	yawg.Infof("%s %s run %s, seed %d", ProgramName, cmd.Name(), env.RunID, seed)
	yawg.LogProperties(props)
	return env, nil
}

func (self *Environment) export(args *Arguments) error {
	w, err := args.ExportDest(self.Props)
	if err != nil {
		return errors.Wrap(err, "fail to open export destination")
	}
	exporter, err := yawg.NewMeasurementExporter(
		self.Props.GetDefault(yawg.PropertyExporter, yawg.PropertyExporterDefault), w)
	if err != nil {
		w.Close()
		return err
	}
	if err := exporter.Write("RUN", "ID", self.RunID); err != nil {
		exporter.Close()
		return err
	}
	if err := exporter.Write("RUN", "RunTime(ms)", time.Since(self.Start).Milliseconds()); err != nil {
		exporter.Close()
		return err
	}
	if err := self.Measurements.ExportMeasurements(exporter); err != nil {
		exporter.Close()
		return err
	}
	return exporter.Close()
}

func (self *Environment) report(paths []string) {
	yawg.Infof("%s files written in %s", humanize.Comma(int64(len(paths))), time.Since(self.Start))
	if summary := self.Measurements.GetSummary(); len(summary) > 0 {
		yawg.Infof("summary %s", summary)
	}
	for _, path := range paths {
		yawg.Debugf("output %s", path)
	}
}

// workloadCommand creates the command writing the files of the named
// workload. recordCount is the record count of each file unless the
// recordcount property is set.
func workloadCommand(args *Arguments, name, use, short, recordCount string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(args, cmd)
			if err != nil {
				return err
			}
			return runWorkload(cmd.Context(), args, env, name, recordCount)
		},
	}
}

func runWorkload(ctx context.Context, args *Arguments, env *Environment, name, recordCount string) error {
	if _, ok := env.Props[yawg.PropertyRecordCount]; !ok {
		env.Props.Add(yawg.PropertyRecordCount, recordCount)
	}
	w, err := workload.NewWorkload(name)
	if err != nil {
		return err
	}
	if err := w.Init(env.Props, env.Random); err != nil {
		return err
	}
	runner, err := workload.NewRunner(env.Props, w, env.Measurements, env.Start)
	if err != nil {
		return err
	}
	paths, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	env.report(paths)
	return env.export(args)
}

func newRootCommand() *cobra.Command {
	args := &Arguments{}
	root := &cobra.Command{
		Use:           ProgramName,
		Short:         "Generate workload files of p/g/d/r commands for key value store benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	args.Bind(root)

	root.AddCommand(
		workloadCommand(args, "load", "load", "Write put commands, \"p key value\"", "1000"),
		workloadCommand(args, "get", "get", "Write get commands, \"g key\"", "1000"),
		workloadCommand(args, "delete", "delete", "Write delete commands, \"d key\"", "10000"),
		workloadCommand(args, "range", "range", "Write range queries, \"r low high\"", "500"),
		workloadCommand(args, "mixed", "mixed", "Write a proportional mix of put, get, delete and range commands", "1000"),
	)

	root.AddCommand(&cobra.Command{
		Use:   "sample input",
		Short: "Write get or delete commands for keys sampled from an existing workload file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			env, err := newEnvironment(args, cmd)
			if err != nil {
				return err
			}
			env.Props.Add(yawg.PropertySamplerInput, posArgs[0])
			return runWorkload(cmd.Context(), args, env, "sample", "0")
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "suite",
		Short: "Write the uniform and gaussian workload files of a sweep of sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(args, cmd)
			if err != nil {
				return err
			}
			dir, err := workload.OutputDir(env.Props, env.Start)
			if err != nil {
				return err
			}
			suite, err := workload.NewSuite(env.Props, dir, env.Random)
			if err != nil {
				return err
			}
			paths, err := suite.Run(cmd.Context(), env.Measurements)
			if err != nil {
				return err
			}
			env.report(paths)
			return env.export(args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "clients split",
		Short: "Write the driver scripts of split clients loading sharded files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			split, err := strconv.Atoi(posArgs[0])
			if err != nil {
				return errors.Errorf("invalid split: %s", posArgs[0])
			}
			env, err := newEnvironment(args, cmd)
			if err != nil {
				return err
			}
			dir, err := workload.OutputDir(env.Props, env.Start)
			if err != nil {
				return err
			}
			paths, err := workload.WriteClientScripts(env.Props, dir, split)
			if err != nil {
				return err
			}
			env.report(paths)
			return nil
		},
	})
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		ExitOnError("%s", err)
	}
}
