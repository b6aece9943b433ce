package config

import (
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	legendscaleerrors "github.com/mbeaudin/legendscale/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a preferences file from disk, validates it, and
// returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, legendscaleerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, legendscaleerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseConfigIfPresent loads a preferences file when one exists. A
// missing file yields a nil config without error; preferences are
// optional and every setting has a fallback.
func ParseConfigIfPresent(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, legendscaleerrors.NewParseError(path, 0, err)
	}

	return ParseConfig(path)
}

// extractLine digs the line number out of a yaml.v3 error message.
func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}

	return line
}
