package lcomplex

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AbsMode selects what the Lua 'abs' method computes.
type AbsMode string

const (
	// AbsSquared returns re²+im², as the C module always did.
	AbsSquared   AbsMode = "squared"
	// AbsMagnitude returns sqrt(re²+im²).
	AbsMagnitude AbsMode = "magnitude"
)

// Options configures how the module is opened in a Lua state.
type Options struct {
	// Namespace is the global table holding 'new'.
	Namespace string  `yaml:"namespace"`
	Abs       AbsMode `yaml:"abs"`
	// Preload also registers the loader in package.preload so that
	// require(Namespace) works.
	Preload   bool    `yaml:"preload"`
}

func DefaultOptions() Options {
	return Options{
		Namespace: "COMPLEX",
		Abs:       AbsSquared,
	}
}

func (o Options) Validate() error {
	if o.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	switch o.Abs {
	case AbsSquared, AbsMagnitude:
	default:
		return fmt.Errorf("abs: unknown mode %q (want %q or %q)", o.Abs, AbsSquared, AbsMagnitude)
	}
	return nil
}

// ParseOptions decodes YAML over the defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

// LoadOptions reads and parses a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseOptions(data)
}
