package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultConfigHeader is written above the generated YAML so a fresh config
// file documents itself.
const defaultConfigHeader = `# tilekit configuration.
# frame: border glyphs and interior spacing used by --frame.
# watch: debounce between file events and re-renders.
`

// WriteDefaultConfig writes the default configuration to path, creating
// parent directories as needed. The file is written only if it does not
// already exist.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(defaultConfigHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(marshalConfig(Defaults())); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// marshalConfig mirrors Config with yaml tags. Config itself carries only
// mapstructure tags for viper, which yaml.v3 does not read.
func marshalConfig(cfg Config) any {
	type frame struct {
		Horizontal    string `yaml:"horizontal"`
		Vertical      string `yaml:"vertical"`
		WidthSpacing  int    `yaml:"width_spacing"`
		HeightSpacing int    `yaml:"height_spacing"`
	}
	type watch struct {
		DebounceMS int `yaml:"debounce_ms"`
	}
	return struct {
		Frame   frame  `yaml:"frame"`
		Watch   watch  `yaml:"watch"`
		LogFile string `yaml:"log_file"`
	}{
		Frame: frame{
			Horizontal:    cfg.Frame.Horizontal,
			Vertical:      cfg.Frame.Vertical,
			WidthSpacing:  cfg.Frame.WidthSpacing,
			HeightSpacing: cfg.Frame.HeightSpacing,
		},
		Watch:   watch{DebounceMS: cfg.Watch.DebounceMS},
		LogFile: cfg.LogFile,
	}
}
