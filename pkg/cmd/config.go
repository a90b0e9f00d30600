// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DEFAULT_FIELD is the coefficient type used when none is specified.
const DEFAULT_FIELD = "float"

// Config captures the settings which apply to every command.  These can be
// given in a YAML file, and then overridden on the command line.
type Config struct {
	// Name of coefficient type to use
	Field string `yaml:"field"`
	// Maximum width of output lines, where 0 means use the terminal width (if
	// there is one).
	TextWidth uint `yaml:"textwidth"`
	// Enable debug logging
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used in the absence of anything else.
func DefaultConfig() Config {
	return Config{Field: DEFAULT_FIELD}
}

// LoadConfig reads a configuration from a given YAML file.  Any settings not
// present in the file retain their default values.
func LoadConfig(filename string) (Config, error) {
	var config = DefaultConfig()
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	//
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return config, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return config, nil
}

// Determine the configuration for a given command, by first reading the config
// file (if given) and then applying any flags explicitly set.  This also
// configures the log level.
func getConfig(cmd *cobra.Command) Config {
	var (
		config   = DefaultConfig()
		filename = getString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		if config, err = LoadConfig(filename); err != nil {
			log.Error(err)
			os.Exit(2)
		}
	}
	// Flags override config file
	if cmd.Flags().Changed("field") {
		config.Field = getString(cmd, "field")
	}
	//
	if cmd.Flags().Changed("textwidth") {
		config.TextWidth = getUint(cmd, "textwidth")
	}
	//
	if cmd.Flags().Changed("verbose") {
		config.Verbose = getFlag(cmd, "verbose")
	}
	// Configure log level
	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	log.Debug(fmt.Sprintf("using field %s (config \"%s\")", config.Field, filename))
	//
	return config
}
