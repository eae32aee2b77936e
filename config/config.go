package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Defaults holds the view settings that a config file may preset.
// Command-line flags always take precedence over them.
type Defaults struct {
	Line    int    `yaml:"line"`
	Format  string `yaml:"format"`
	Plain   bool   `yaml:"plain"`
	Text    bool   `yaml:"text"`
	Charset string `yaml:"charset"`
	Human   bool   `yaml:"human"`
}

// Default returns the built-in settings used when no config file is given.
func Default() Defaults {
	return Defaults{
		Line:   8,
		Format: "hexadecimal",
	}
}

// Read initializes defaults from a YAML file. Keys missing from the file
// keep their built-in values.
func Read(path string) (result Defaults, err error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return
	}
	result = Default()
	err = yaml.UnmarshalStrict(in, &result)
	return
}
