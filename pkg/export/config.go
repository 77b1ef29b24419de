package export

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputFilename is the artifact name used when no config file or
// override supplies one.
const DefaultOutputFilename = "project_context.txt"

// ErrEmptyOutput is returned by Validate when no output filename is set.
var ErrEmptyOutput = errors.New("output filename must not be empty")

// Config holds the inputs for a single export run. All paths are relative to
// the working directory the tool is invoked from, and the value is immutable
// for the duration of the run.
type Config struct {
	// SpecificFiles are explicit files appended in configured order.
	SpecificFiles []string `yaml:"specific_files"`

	// RecursiveDirs are directories whose regular files are appended, per
	// directory, in lexicographic path order.
	RecursiveDirs []string `yaml:"recursive_dirs"`

	// OutputFilename is the destination path of the combined artifact.
	OutputFilename string `yaml:"output_filename"`
}

// DefaultConfig returns the stock project layout the tool ships with.
func DefaultConfig() *Config {
	return &Config{
		SpecificFiles: []string{
			".env",
			"docker-compose.yml",
			"frontend/Dockerfile.prod",
			"frontend/eslint.config.js",
			"frontend/index.html",
			"frontend/nginx.conf",
			"frontend/postcss.config.js",
			"frontend/tailwind.config.js",
			"frontend/vite.config.ts",
		},
		RecursiveDirs: []string{
			"backend",
			"frontend/src",
		},
		OutputFilename: DefaultOutputFilename,
	}
}

// LoadConfig loads configuration from the specified YAML file.
// A missing file is not an error: the defaults are returned so the tool works
// out of the box. A present file replaces the file and directory lists
// wholesale; only an empty output_filename falls back to the default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.OutputFilename == "" {
		cfg.OutputFilename = DefaultOutputFilename
	}

	return &cfg, nil
}

// Validate checks that the configuration can drive an export run.
func (c *Config) Validate() error {
	if c.OutputFilename == "" {
		return ErrEmptyOutput
	}
	return nil
}
