package config

import (
	"os"
	"path/filepath"

	"github.com/SethHorsley/agg-files/internal/utils"
	"gopkg.in/yaml.v3"
)

// ProjectFileName is the per-project configuration file looked up in
// the working directory.
const ProjectFileName = ".agg-files"

// Project is the contents of the .agg-files configuration file. The
// only recognized key is `ignore`, an ordered list of glob strings.
type Project struct {
	Ignore []string `yaml:"ignore"`
}

// LoadProject reads dir/.agg-files. A missing file yields an empty
// configuration. A file that fails to parse also yields an empty
// configuration; the failure is logged but never aborts the run.
func LoadProject(dir string, log utils.Logger) Project {
	var project Project

	path := filepath.Join(dir, ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return project
	}

	if err := yaml.Unmarshal(data, &project); err != nil {
		log.Warn("config: ignoring malformed %s: %v", ProjectFileName, err)
		return Project{}
	}

	return project
}
