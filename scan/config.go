// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up by the command line.
const DefaultConfigFile = ".effectlint.yaml"

// Config configures a [Scanner].
type Config struct {
	// Hooks are the callee names whose second argument is a dependency list.
	// Member calls match by property name, so "useEffect" matches React.useEffect.
	Hooks []string `yaml:"hooks" json:"hooks"`

	// Ignore are glob patterns of paths to skip, matched against the path relative
	// to the scanned root and against the base name.
	Ignore []string `yaml:"ignore,omitempty" json:"ignore,omitempty"`

	// Kinds enables reporting per kind of entry.
	Kinds Kinds `yaml:"kinds" json:"kinds"`

	// Workers is the number of files parsed in parallel, zero means one per CPU.
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// Kinds enables reporting per kind of dependency list entry.
type Kinds struct {
	Arrays    bool `yaml:"arrays" json:"arrays"`
	Objects   bool `yaml:"objects" json:"objects"`
	Functions bool `yaml:"functions" json:"functions"`
}

// DefaultConfig returns the configuration used without a configuration file.
func DefaultConfig() Config {
	return Config{
		Hooks: []string{"useEffect", "useLayoutEffect", "useEnhancedEffect", "useMemo", "useCallback"},
		Kinds: Kinds{Arrays: true, Objects: true, Functions: true},
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep their
// default values, a missing file yields [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal returns the YAML representation of the configuration.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
