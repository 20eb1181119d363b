// Package colorscheme is the read-only environment color table used by
// converters and environment-default helpers.
package colorscheme

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultName is the scheme used for unknown environments.
const DefaultName = "Default"

//go:embed schemes.yaml
var schemesYAML []byte

// Color is a linear RGBA color. Alpha defaults to 1.
type Color struct {
	R float64  `yaml:"r"`
	G float64  `yaml:"g"`
	B float64  `yaml:"b"`
	A *float64 `yaml:"a,omitempty"`
}

// RGB returns the color channels as the array form used in custom data.
func (c Color) RGB() []any { return []any{c.R, c.G, c.B} }

// Alpha returns the alpha channel, 1 when unset.
func (c Color) Alpha() float64 {
	if c.A == nil {
		return 1
	}
	return *c.A
}

type Scheme struct {
	Name               string `yaml:"-"`
	ColorLeft          *Color `yaml:"colorLeft"`
	ColorRight         *Color `yaml:"colorRight"`
	EnvColorLeft       *Color `yaml:"envColorLeft"`
	EnvColorRight      *Color `yaml:"envColorRight"`
	EnvColorLeftBoost  *Color `yaml:"envColorLeftBoost,omitempty"`
	EnvColorRightBoost *Color `yaml:"envColorRightBoost,omitempty"`
	ObstacleColor      *Color `yaml:"obstacleColor"`
}

type table struct {
	Schemes      map[string]*Scheme `yaml:"schemes"`
	Environments map[string]string  `yaml:"environments"`
}

var (
	loadOnce sync.Once
	loaded   table
	loadErr  error
)

// Parse decodes a scheme table document.
func Parse(data []byte) (map[string]*Scheme, map[string]string, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, nil, fmt.Errorf("colorscheme: %w", err)
	}
	for name, s := range t.Schemes {
		if s == nil || s.EnvColorLeft == nil || s.EnvColorRight == nil {
			return nil, nil, fmt.Errorf("colorscheme: scheme %q lacks environment colors", name)
		}
		s.Name = name
	}
	for env, name := range t.Environments {
		if _, ok := t.Schemes[name]; !ok {
			return nil, nil, fmt.Errorf("colorscheme: environment %q references unknown scheme %q", env, name)
		}
	}
	return t.Schemes, t.Environments, nil
}

func builtin() table {
	loadOnce.Do(func() {
		loaded.Schemes, loaded.Environments, loadErr = Parse(schemesYAML)
	})
	if loadErr != nil {
		panic(loadErr)
	}
	return loaded
}

// Get returns the named scheme.
func Get(name string) (Scheme, bool) {
	s, ok := builtin().Schemes[name]
	if !ok {
		return Scheme{}, false
	}
	return *s, true
}

// ForEnvironment returns the scheme of an environment, falling back to the
// default scheme.
func ForEnvironment(env string) Scheme {
	t := builtin()
	if name, ok := t.Environments[env]; ok {
		return *t.Schemes[name]
	}
	return *t.Schemes[DefaultName]
}

// Environments lists the environments with a known scheme, sorted.
func Environments() []string {
	t := builtin()
	out := make([]string, 0, len(t.Environments))
	for env := range t.Environments {
		out = append(out, env)
	}
	sort.Strings(out)
	return out
}
