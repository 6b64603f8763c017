package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/ytget/pdf-merger/internal/platform"
)

// MergeJob is a saved merge: inputs in order, the output and engine options.
// Relative paths are resolved against the directory of the job file.
type MergeJob struct {
	Output     string   `yaml:"output"`
	Divider    bool     `yaml:"divider,omitempty"`
	Validation string   `yaml:"validation,omitempty"`
	Files      []string `yaml:"files"`
}

// LoadMergeJob reads a YAML job file
func LoadMergeJob(path string) (*MergeJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file %s: %w", path, err)
	}

	var job MergeJob
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}

	if job.Validation != "" && job.Validation != string(ValidationStrict) && job.Validation != string(ValidationRelaxed) {
		return nil, fmt.Errorf("job file %s: unknown validation mode %q", path, job.Validation)
	}

	base := filepath.Dir(path)
	job.Output = resolvePath(base, job.Output)
	for i, f := range job.Files {
		job.Files[i] = resolvePath(base, f)
	}
	return &job, nil
}

// WriteMergeJob saves job as YAML
func WriteMergeJob(path string, job *MergeJob) error {
	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("encoding job file: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating job file directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing job file %s: %w", path, err)
	}
	return nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
