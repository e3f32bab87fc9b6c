package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/telelog"
	"github.com/arloliu/telelog/endian"
	"github.com/arloliu/telelog/format"
)

// Config holds defaults read from a YAML file. Command line flags override it.
//
//	byte_order: little   # little, big or native
//	compression: auto    # auto, none, zstd, s2 or lz4
//	output: json         # default export format
type Config struct {
	ByteOrder   string `yaml:"byte_order"`
	Compression string `yaml:"compression"`
	Output      string `yaml:"output"`
}

func defaultConfig() Config {
	return Config{ByteOrder: "little", Compression: "auto", Output: "json"}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOptions converts the config into loader options.
func (c Config) LoadOptions() ([]telelog.LoadOption, error) {
	engine, err := endian.ParseEngine(c.ByteOrder)
	if err != nil {
		return nil, err
	}
	opts := []telelog.LoadOption{telelog.WithByteOrder(engine)}

	if c.Compression == "" || c.Compression == "auto" {
		return opts, nil
	}

	ct, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return nil, err
	}

	return append(opts, telelog.WithCompression(ct)), nil
}
