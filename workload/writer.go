package workload

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// CommandWriter writes records to a file, one command per line.
type CommandWriter struct {
	path  string
	file  *os.File
	buf   *bufio.Writer
	line  []byte
	count int64
	bytes int64
}

// CreateCommandWriter creates or truncates the file at path. The parent
// directory must exist.
func CreateCommandWriter(path string) (*CommandWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to create %s", path)
	}
	return &CommandWriter{
		path: path,
		file: f,
		buf:  bufio.NewWriterSize(f, 64*1024),
		line: make([]byte, 0, 32),
	}, nil
}

func (self *CommandWriter) Write(r Record) error {
	self.line = append(r.AppendTo(self.line[:0]), '\n')
	n, err := self.buf.Write(self.line)
	self.bytes += int64(n)
	if err != nil {
		return errors.Wrapf(err, "fail to write %s", self.path)
	}
	self.count++
	return nil
}

// Count is the number of records written so far.
func (self *CommandWriter) Count() int64 {
	return self.count
}

func (self *CommandWriter) Bytes() int64 {
	return self.bytes
}

func (self *CommandWriter) Path() string {
	return self.path
}

// Close flushes the buffered lines and closes the file. The file is closed
// even when flushing fails.
func (self *CommandWriter) Close() error {
	flushErr := self.buf.Flush()
	closeErr := self.file.Close()
	if flushErr != nil {
		return errors.Wrapf(flushErr, "fail to flush %s", self.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "fail to close %s", self.path)
	}
	return nil
}

// WriteCommands writes the records to path, replacing any previous content.
func WriteCommands(path string, records []Record) error {
	w, err := CreateCommandWriter(path)
	if err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
