package workload

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hhkbp2/yawg"
	g "github.com/hhkbp2/yawg/generator"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	maxSuiteExponent = 40
)

var (
	// SuiteDistributions maps the file name tag of each suite key set to its
	// key distribution.
	SuiteDistributions = []struct {
		Tag          string
		Distribution string
	}{
		{"uni", "uniform"},
		{"gau", "gaussian"},
	}
)

// SuiteJob is one file of a suite.
type SuiteJob struct {
	Path         string
	Distribution string
	Count        int64
	Seed         int64
}

// Suite is a sweep of workload files of growing size, 2^(base+step*n)
// records for n in [0, count), one file per size and key distribution.
type Suite struct {
	props       yawg.Properties
	op          Op
	threadCount int
	jobs        []SuiteJob
}

// NewSuite plans the files of the suite under dir. The seed of every file is
// drawn from r up front, so the content of a file doesn't depend on the
// order the files are written in.
func NewSuite(p yawg.Properties, dir string, r *rand.Rand) (*Suite, error) {
	base, err := p.GetInt64(yawg.PropertySuiteBase, yawg.PropertySuiteBaseDefault)
	if err != nil {
		return nil, err
	}
	step, err := p.GetInt64(yawg.PropertySuiteStep, yawg.PropertySuiteStepDefault)
	if err != nil {
		return nil, err
	}
	count, err := p.GetInt64(yawg.PropertySuiteCount, yawg.PropertySuiteCountDefault)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, errors.Errorf("%s must be positive, got %d", yawg.PropertySuiteCount, count)
	}
	for _, exp := range []int64{base, base + step*(count-1)} {
		if exp < 0 || exp > maxSuiteExponent {
			return nil, errors.Errorf("suite size 2^%d out of [2^0, 2^%d]", exp, maxSuiteExponent)
		}
	}
	op, err := ParseOp(p.GetDefault(yawg.PropertySuiteOp, yawg.PropertySuiteOpDefault))
	if err != nil {
		return nil, err
	}
	if op != OpInsert && op != OpGet {
		return nil, errors.Errorf("%s must be %q or %q, got %q", yawg.PropertySuiteOp, OpInsert, OpGet, op)
	}
	threadCount, err := p.GetInt64(yawg.PropertyThreadCount, yawg.PropertyThreadCountDefault)
	if err != nil {
		return nil, err
	}
	if threadCount < 1 {
		return nil, errors.Errorf("%s must be positive, got %d", yawg.PropertyThreadCount, threadCount)
	}

	seeds := g.DeriveSeeds(r, int(count)*len(SuiteDistributions))
	jobs := make([]SuiteJob, 0, len(seeds))
	for n := int64(0); n < count; n++ {
		for _, d := range SuiteDistributions {
			jobs = append(jobs, SuiteJob{
				Path:         filepath.Join(dir, fmt.Sprintf("%s_workload_%d.txt", d.Tag, n)),
				Distribution: d.Distribution,
				Count:        int64(1) << uint(base+step*n),
				Seed:         seeds[len(jobs)],
			})
		}
	}
	return &Suite{
		props:       p,
		op:          op,
		threadCount: int(threadCount),
		jobs:        jobs,
	}, nil
}

func (self *Suite) Jobs() []SuiteJob {
	return self.jobs
}

func (self *Suite) runJob(ctx context.Context, job SuiteJob, m yawg.Measurements) error {
	p := self.props.Clone()
	p.Add(yawg.PropertyKeyDistribution, job.Distribution)
	w := NewCoreWorkload(job.Distribution, self.op)
	if err := w.Init(p, g.NewRandom(job.Seed)); err != nil {
		return err
	}
	start := time.Now()
	if err := writeFile(ctx, job.Path, job.Count, w.NextRecord, m); err != nil {
		return errors.Wrapf(err, "suite file %s", job.Path)
	}
	yawg.Debugf("suite file %s done in %s", job.Path, time.Since(start))
	return nil
}

// Run writes the suite files with up to threadcount goroutines and returns
// their paths. The first error cancels the jobs not yet finished.
func (self *Suite) Run(ctx context.Context, m yawg.Measurements) ([]string, error) {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(self.threadCount)
	for _, job := range self.jobs {
		job := job
		group.Go(func() error {
			return self.runJob(ctx, job, m)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(self.jobs))
	for _, job := range self.jobs {
		paths = append(paths, job.Path)
	}
	return paths, nil
}
