package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/neekrasov/smush/pkg/smush"
)

type (
	Config struct {
		Logging *LoggingConfig `yaml:"logging" json:"logging"`
		Codecs  *CodecsConfig  `yaml:"codecs" json:"codecs"`
		Limits  *LimitsConfig  `yaml:"limits" json:"limits"`
	}

	LoggingConfig struct {
		Level  string `yaml:"level" json:"level"`
		Output string `yaml:"output" json:"output"`
	}

	CodecsConfig struct {
		DefaultEncoding smush.Encoding   `yaml:"default_encoding" json:"default_encoding"`
		DefaultQuality  smush.Quality    `yaml:"default_quality" json:"default_quality"`
		Disabled        []smush.Encoding `yaml:"disabled" json:"disabled"`
	}

	LimitsConfig struct {
		MaxInputSize string `yaml:"max_input_size" json:"max_input_size"`
	}
)

func GetConfig(path string) (Config, error) {
	configContent, err := GetConfigReader(path)
	if err != nil {
		return Config{}, err
	}

	return ParseConfig(configContent)
}

// ParseConfig - decodes yaml, falling back to json.
func ParseConfig(input io.ReadCloser) (Config, error) {
	defer input.Close()

	content, err := io.ReadAll(input)
	if err != nil {
		return Config{}, fmt.Errorf("cant read config: %w", err)
	}

	var parseErr strings.Builder
	for _, parser := range []func(io.Reader, *Config) error{yamlParser, jsonParser} {
		var cfg Config
		if err = parser(bytes.NewReader(content), &cfg); err == nil {
			return cfg, nil
		}
		_, _ = parseErr.WriteString(fmt.Sprintf("Error parsing config: %s\n", err.Error()))
	}

	return Config{}, errors.New(parseErr.String())
}

func yamlParser(input io.Reader, config *Config) error {
	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return fmt.Errorf("cant decode yaml config: %w", err)
	}

	return nil
}

func jsonParser(input io.Reader, config *Config) error {
	decoder := json.NewDecoder(input)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return fmt.Errorf("cant decode json config: %w", err)
	}

	return nil
}
