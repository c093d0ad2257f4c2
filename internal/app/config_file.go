package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to the flag names.
type FileConfig struct {
	Output   string `yaml:"output" json:"output"`
	Title    string `yaml:"title" json:"title"`
	Manifest bool   `yaml:"manifest" json:"manifest"`
	Jobs     int    `yaml:"jobs" json:"jobs"`
	Verbose  bool   `yaml:"verbose" json:"verbose"`

	Max struct {
		Pages int `yaml:"pages" json:"pages"`
	} `yaml:"max" json:"max"`

	Min struct {
		PatternChars   int `yaml:"patternChars" json:"patternChars"`
		ParagraphChars int `yaml:"paragraphChars" json:"paragraphChars"`
	} `yaml:"min" json:"min"`

	Scan struct {
		Window int `yaml:"window" json:"window"`
	} `yaml:"scan" json:"scan"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults that flag parsing establishes; file config may override a field
// only while the flag kept its default, so explicit flags always win.
const (
	MaxPagesDefault          = 3
	MinPatternCharsDefault   = 50
	MinParagraphCharsDefault = 100
	ScanWindowDefault        = 10
	JobsDefault              = 1
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or still at their flag defaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.Title == "" && fc.Title != "" {
		cfg.Title = fc.Title
	}
	if !cfg.WriteManifest && fc.Manifest {
		cfg.WriteManifest = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if (cfg.Jobs == 0 || cfg.Jobs == JobsDefault) && fc.Jobs > 0 {
		cfg.Jobs = fc.Jobs
	}
	if cfg.MaxPages == MaxPagesDefault && fc.Max.Pages > 0 {
		cfg.MaxPages = fc.Max.Pages
	}
	if (cfg.MinPatternChars == 0 || cfg.MinPatternChars == MinPatternCharsDefault) && fc.Min.PatternChars > 0 {
		cfg.MinPatternChars = fc.Min.PatternChars
	}
	if (cfg.MinParagraphChars == 0 || cfg.MinParagraphChars == MinParagraphCharsDefault) && fc.Min.ParagraphChars > 0 {
		cfg.MinParagraphChars = fc.Min.ParagraphChars
	}
	if (cfg.ScanWindow == 0 || cfg.ScanWindow == ScanWindowDefault) && fc.Scan.Window > 0 {
		cfg.ScanWindow = fc.Scan.Window
	}
}
