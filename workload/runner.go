package workload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hhkbp2/go-strftime"
	"github.com/hhkbp2/yawg"
	"github.com/pkg/errors"
)

const (
	// OperationFile is the measurement of writing one whole output file.
	OperationFile = "FILE"

	cancelCheckInterval = 4096
)

// OutputDir expands the strftime escapes of the configured output directory
// with start, and creates the directory when asked to.
func OutputDir(p yawg.Properties, start time.Time) (string, error) {
	dir := strftime.Format(p.GetDefault(yawg.PropertyOutputDir, yawg.PropertyOutputDirDefault), start)
	mkdir, err := p.GetBool(yawg.PropertyOutputMkdir, yawg.PropertyOutputMkdirDefault)
	if err != nil {
		return "", err
	}
	if mkdir {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrapf(err, "fail to create output directory %s", dir)
		}
	}
	return dir, nil
}

// writeFile streams count records drawn from next into path. The latency of
// every record and of the whole file is measured. A file left incomplete by
// cancellation or a write error is removed.
func writeFile(ctx context.Context, path string, count int64, next func() Record, m yawg.Measurements) error {
	fileStart := time.Now()
	w, err := CreateCommandWriter(path)
	if err != nil {
		m.ReportStatus(OperationFile, yawg.StatusError)
		return err
	}
	for i := int64(0); i < count; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				discard(w, path)
				return err
			}
		}
		r := next()
		start := time.Now()
		if err := w.Write(r); err != nil {
			m.ReportStatus(r.Op.Name(), yawg.StatusError)
			discard(w, path)
			return err
		}
		m.Measure(r.Op.Name(), yawg.SinceNS(start))
		m.ReportStatus(r.Op.Name(), yawg.StatusOK)
	}
	if err := w.Close(); err != nil {
		m.ReportStatus(OperationFile, yawg.StatusError)
		os.Remove(path)
		return err
	}
	m.Measure(OperationFile, yawg.SinceNS(fileStart))
	m.ReportStatus(OperationFile, yawg.StatusOK)
	yawg.Infof("wrote %s records (%s) to %s in %s",
		humanize.Comma(w.Count()), humanize.Bytes(uint64(w.Bytes())), path, time.Since(fileStart))
	return nil
}

// discard closes and removes a partially written file.
func discard(w *CommandWriter, path string) {
	w.Close()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		yawg.Warnf("fail to remove partial file %s: %s", path, err)
	}
}

// Runner writes the numbered output files of one workload, one after
// another.
type Runner struct {
	workload     Workload
	measurements yawg.Measurements
	dir          string
	prefix       string
	fileCount    int64
	recordCount  int64
}

func NewRunner(p yawg.Properties, w Workload, m yawg.Measurements, start time.Time) (*Runner, error) {
	dir, err := OutputDir(p, start)
	if err != nil {
		return nil, err
	}
	fileCount, err := p.GetInt64(yawg.PropertyFileCount, yawg.PropertyFileCountDefault)
	if err != nil {
		return nil, err
	}
	if fileCount < 1 {
		return nil, errors.Errorf("%s must be positive, got %d", yawg.PropertyFileCount, fileCount)
	}
	recordCount, err := p.GetInt64(yawg.PropertyRecordCount, yawg.PropertyRecordCountDefault)
	if err != nil {
		return nil, err
	}
	if recordCount < 0 {
		return nil, errors.Errorf("%s must not be negative, got %d", yawg.PropertyRecordCount, recordCount)
	}
	return &Runner{
		workload:     w,
		measurements: m,
		dir:          dir,
		prefix:       p.GetDefault(yawg.PropertyOutputPrefix, w.Prefix()),
		fileCount:    fileCount,
		recordCount:  recordCount,
	}, nil
}

// Path is the path of the n-th output file, counting from 1.
func (self *Runner) Path(n int64) string {
	return filepath.Join(self.dir, fmt.Sprintf("%s_%d.txt", self.prefix, n))
}

// Run writes all the output files and returns their paths. It stops at the
// first error.
func (self *Runner) Run(ctx context.Context) ([]string, error) {
	paths := make([]string, 0, self.fileCount)
	for n := int64(1); n <= self.fileCount; n++ {
		count, err := self.workload.BeginFile(self.recordCount)
		if err != nil {
			return paths, err
		}
		path := self.Path(n)
		if err := writeFile(ctx, path, count, self.workload.NextRecord, self.measurements); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
