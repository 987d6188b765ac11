package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/outcome-sim/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render runs the formatter registered under format (or one of its aliases).
func Render(result *domain.SimulationResult, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return f.Format(result)
}

// WriteReport renders result and writes it to path. When path is an existing
// directory a timestamped file name is generated inside it. It returns the
// file actually written.
func WriteReport(result *domain.SimulationResult, format, path string) (string, error) {
	data, err := Render(result, format)
	if err != nil {
		return "", err
	}

	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		ext := extensionFor(NormalizeFormatName(format))
		path = filepath.Join(path, fmt.Sprintf("outcome_report_%s.%s", time.Now().Format("20060102_150405"), ext))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
