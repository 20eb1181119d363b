package bsmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/reoring/bsmap/beatmap"
)

// Bool returns a pointer to v for the optional switches of the options.
func Bool(v bool) *bool { return &v }

func or(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

type OptimizeOptions struct {
	// Enabled strips fields equal to their default before writing. Default true.
	Enabled *bool `yaml:"enabled"`
}

type DataCheckOptions struct {
	// Enable runs the shape check.
	Enable *bool `yaml:"enable"`
	// ThrowError turns shape issues into an error instead of log lines.
	ThrowError *bool `yaml:"throwError"`
}

// SaveOptions configures Save. Zero values take the defaults reported by
// DefaultSaveOptions.
type SaveOptions struct {
	Directory string `yaml:"directory"`
	// FilePath defaults to the difficulty's file name.
	FilePath string `yaml:"filePath"`
	// Format is the indent width; 0 writes compact JSON.
	Format    int              `yaml:"format"`
	Optimize  OptimizeOptions  `yaml:"optimize"`
	DataCheck DataCheckOptions `yaml:"dataCheck"`
}

// DefaultSaveOptions returns the fully resolved defaults.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		FilePath:  "UnnamedDifficulty.dat",
		Optimize:  OptimizeOptions{Enabled: Bool(true)},
		DataCheck: DataCheckOptions{Enable: Bool(true), ThrowError: Bool(true)},
	}
}

func (o SaveOptions) optimize() bool   { return or(o.Optimize.Enabled, true) }
func (o SaveOptions) check() bool      { return or(o.DataCheck.Enable, true) }
func (o SaveOptions) throwError() bool { return or(o.DataCheck.ThrowError, true) }

func (o SaveOptions) path(d beatmap.Difficulty) string {
	name := o.FilePath
	if name == "" {
		name = d.FileName()
	}
	if name == "" {
		name = DefaultSaveOptions().FilePath
	}
	return filepath.Join(resolveDirectory(o.Directory), name)
}

// LoadOptions configures Load. The shape check and the correction pass are
// opt-in when loading.
type LoadOptions struct {
	Directory string           `yaml:"directory"`
	DataCheck DataCheckOptions `yaml:"dataCheck"`
	// Correct runs the data-correction pass on the loaded difficulty.
	Correct bool `yaml:"correct"`
	// Family forces the schema family of documents without a version tag.
	Family beatmap.Family `yaml:"-"`
}

func (o LoadOptions) check() bool      { return or(o.DataCheck.Enable, false) }
func (o LoadOptions) throwError() bool { return or(o.DataCheck.ThrowError, false) }

// Config groups the save and load options of an options file.
type Config struct {
	Save SaveOptions `yaml:"save"`
	Load LoadOptions `yaml:"load"`
}

// ParseConfig decodes a YAML options file. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// LoadConfigFile reads a YAML options file through the global FileSystem.
func LoadConfigFile(path string) (Config, error) {
	data, err := getFileSystem().ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

var (
	dirMu     sync.RWMutex
	directory string
)

// SetDirectory sets the directory used when options leave Directory empty.
func SetDirectory(dir string) {
	dirMu.Lock()
	directory = dir
	dirMu.Unlock()
}

func resolveDirectory(dir string) string {
	if dir != "" {
		return dir
	}
	dirMu.RLock()
	defer dirMu.RUnlock()
	return directory
}
