package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/milk9111/gravshift/obj"
	"gopkg.in/yaml.v3"
)

// BindingsFile is the default bindings file name.
const BindingsFile = "bindings.yaml"

var (
	ErrBindingsNotFound = errors.New("config: bindings not found")
	ErrUnknownAction    = obj.ErrUnknownAction
)

// ActionBinding maps one action to keyboard keys and standard gamepad
// buttons, by their Ebitengine names.
type ActionBinding struct {
	Action  string   `yaml:"action"`
	Keys    []string `yaml:"keys"`
	Buttons []string `yaml:"buttons"`
}

type Bindings struct {
	Actions []ActionBinding `yaml:"actions"`
}

// Binding is a resolved ActionBinding.
type Binding struct {
	Keys    []string
	Buttons []string
}

// ParseBindings decodes YAML bindings and checks every action name.
func ParseBindings(data []byte) (*Bindings, error) {
	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("config: unmarshal bindings: %w", err)
	}
	for _, ab := range b.Actions {
		if _, err := obj.ParseAction(ab.Action); err != nil {
			return nil, fmt.Errorf("config: bindings: %w", err)
		}
	}
	return &b, nil
}

// LoadBindings reads a bindings file by name.
func LoadBindings(name string) (*Bindings, error) {
	data, err := Load(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBindingsNotFound, name)
		}
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}
	return ParseBindings(data)
}

// Resolve groups bindings by action. Repeated entries for the same action
// are merged.
func (b *Bindings) Resolve() map[obj.Action]Binding {
	out := make(map[obj.Action]Binding)
	if b == nil {
		return out
	}
	for _, ab := range b.Actions {
		a, err := obj.ParseAction(ab.Action)
		if err != nil {
			continue
		}
		cur := out[a]
		cur.Keys = append(cur.Keys, ab.Keys...)
		cur.Buttons = append(cur.Buttons, ab.Buttons...)
		out[a] = cur
	}
	return out
}
