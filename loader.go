package brandgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/brandgen/internal/brandgen"
)

// LoadBrandConfig reads a brand file and layers it over DefaultBrandConfig.
// YAML and JSON are accepted; JSON is read by the YAML parser.
func LoadBrandConfig(path string) (BrandConfig, error) {
	cfg := brandgen.DefaultBrandConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return cfg, fmt.Errorf("load %s: unsupported brand file extension", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
