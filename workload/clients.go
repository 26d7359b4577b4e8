package workload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hhkbp2/yawg"
	"github.com/pkg/errors"
)

// ClientScript is the driver script of client i of split: load its shard,
// then quit. Every client but the last leaves the server running.
func ClientScript(loadFile string, split, i int) string {
	quit := "cq"
	if i == split-1 {
		quit = "q"
	}
	return fmt.Sprintf("l %s\n%s", fmt.Sprintf(loadFile, split, i), quit)
}

// WriteClientScripts writes the driver scripts of split clients into dir,
// as <prefix><i>.txt for i in [0, split).
func WriteClientScripts(p yawg.Properties, dir string, split int) ([]string, error) {
	if split < 1 {
		return nil, errors.Errorf("invalid client split %d", split)
	}
	loadFile := p.GetDefault(yawg.PropertyClientLoadFile, yawg.PropertyClientLoadFileDefault)
	if strings.Count(loadFile, "%d") != 2 || strings.Count(loadFile, "%") != 2 {
		return nil, errors.Errorf("%s must hold exactly two %%d verbs, got %q", yawg.PropertyClientLoadFile, loadFile)
	}
	prefix := p.GetDefault(yawg.PropertyClientPrefix, yawg.PropertyClientPrefixDefault)
	paths := make([]string, 0, split)
	for i := 0; i < split; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d.txt", prefix, i))
		if err := os.WriteFile(path, []byte(ClientScript(loadFile, split, i)), 0644); err != nil {
			return paths, errors.Wrapf(err, "fail to write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
