package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/storetree/internal/extensibility"
)

// ErrUnsupportedFormat is returned for manifest files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// LoadManifest reads a manifest file, choosing the decoder by extension:
// .yaml/.yml, .json or .hcl.
func LoadManifest(path string) (*extensibility.ModuleManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAMLManifest(data)
	case ".json":
		return DecodeJSONManifest(data)
	case ".hcl":
		return DecodeHCLManifest(path, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// DecodeYAMLManifest decodes a YAML manifest.
func DecodeYAMLManifest(data []byte) (*extensibility.ModuleManifest, error) {
	var m extensibility.ModuleManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &m, nil
}

// DecodeJSONManifest decodes a JSON manifest.
func DecodeJSONManifest(data []byte) (*extensibility.ModuleManifest, error) {
	var m extensibility.ModuleManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return &m, nil
}

// SaveManifest writes m as YAML or JSON depending on the extension of path.
func SaveManifest(path string, m *extensibility.ModuleManifest) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
	case ".json":
		data, err = json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
