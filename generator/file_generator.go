package generator

import (
	"bufio"
	"os"
)

// FileGenerator reads a file line by line.
type FileGenerator struct {
	lineNo  int
	file    *os.File
	scanner *bufio.Scanner
}

func NewFileGenerator(filename string) (*FileGenerator, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	object := &FileGenerator{
		file:    f,
		scanner: bufio.NewScanner(f),
	}
	return object, nil
}

// Next returns the next line, or false at the end of the file or on a read
// error. Err tells the two apart.
func (self *FileGenerator) Next() (string, bool) {
	if self.scanner.Scan() {
		self.lineNo++
		return self.scanner.Text(), true
	}
	return "", false
}

// LineNumber is the 1-based number of the last line returned.
func (self *FileGenerator) LineNumber() int {
	return self.lineNo
}

func (self *FileGenerator) Err() error {
	return self.scanner.Err()
}

func (self *FileGenerator) Close() error {
	return self.file.Close()
}
