package prefs

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileLayout matches the on-disk TOML structure:
//
//	[platform.tanker]
//	icon = "tanker.png"
//	brightness = 50
type fileLayout struct {
	Platform map[string]toml.Primitive `toml:"platform"`
}

// LoadFile reads per-platform preferences from a TOML file.
// Each platform section starts from Default() so omitted fields keep
// their standard values
func LoadFile(path string) (map[string]PlatformPrefs, error) {
	var layout fileLayout
	md, err := toml.DecodeFile(path, &layout)
	if err != nil {
		return nil, fmt.Errorf("prefs file %s: %w", path, err)
	}
	return decodePlatforms(md, layout)
}

// LoadString parses preferences from TOML text, for tests and embedding
func LoadString(data string) (map[string]PlatformPrefs, error) {
	var layout fileLayout
	md, err := toml.Decode(data, &layout)
	if err != nil {
		return nil, fmt.Errorf("prefs data: %w", err)
	}
	return decodePlatforms(md, layout)
}

func decodePlatforms(md toml.MetaData, layout fileLayout) (map[string]PlatformPrefs, error) {
	out := make(map[string]PlatformPrefs, len(layout.Platform))
	for name, prim := range layout.Platform {
		p := Default()
		if err := md.PrimitiveDecode(prim, &p); err != nil {
			return nil, fmt.Errorf("platform %q: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}
