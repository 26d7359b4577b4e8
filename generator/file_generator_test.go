package generator

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestFileGenerator(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "file_generator.data")
	require.Nil(t, ioutil.WriteFile(filename, []byte("1\n2\n3\n4\n"), 0644))
	fg, err := NewFileGenerator(filename)
	require.Nil(t, err)
	defer fg.Close()
	for i := 1; i <= 4; i++ {
		line, ok := fg.Next()
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("%d", i), line)
		require.Equal(t, i, fg.LineNumber())
	}
	_, ok := fg.Next()
	require.False(t, ok)
	require.Equal(t, 4, fg.LineNumber())
	require.Nil(t, fg.Err())
}

func TestFileGeneratorMissingFile(t *testing.T) {
	_, err := NewFileGenerator(filepath.Join(t.TempDir(), "missing"))
	require.NotNil(t, err)
}
