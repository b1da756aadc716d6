// Command Builder generates placeholder launcher icons for the Builder
// Android app, one pair per density bucket, without needing an image library
// or external assets.
package main

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config holds everything the generator needs: where the Android res/ tree
// lives, the color palette, and the density buckets to emit.
type Config struct {
	BasePath  string
	Palette   Palette
	Densities []Density
}

// Palette is the Material color set the placeholder art is drawn with.
type Palette struct {
	Primary     RGB
	PrimaryDark RGB
	Accent      RGB
}

// Density is one Android density bucket and its launcher icon edge length.
// Launcher icons are square.
type Density struct {
	Name string
	Size int
}

func defaultConfig() Config {
	return Config{
		BasePath: filepath.Join("app", "src", "main", "res"),
		Palette: Palette{
			Primary:     RGB{0x62, 0x00, 0xEE},
			PrimaryDark: RGB{0x37, 0x00, 0xB3},
			Accent:      RGB{0x03, 0xDA, 0xC6},
		},
		Densities: []Density{
			{"mdpi", 48},
			{"hdpi", 72},
			{"xhdpi", 96},
			{"xxhdpi", 144},
			{"xxxhdpi", 192},
		},
	}
}

// generateLauncherIcons writes ic_launcher.png and ic_launcher_round.png
// under cfg.BasePath/mipmap-<density>/ for every configured bucket. The
// first failure aborts the run; files already written stay on disk.
func generateLauncherIcons(cfg Config) error {
	rule := Gradient{
		Top:    cfg.Palette.Primary,
		Bottom: cfg.Palette.PrimaryDark,
		Accent: cfg.Palette.Accent,
	}
	// TODO: apply a circular mask to the round variant; until then both
	// names get the same pixels.
	names := []string{"ic_launcher.png", "ic_launcher_round.png"}
	for _, d := range cfg.Densities {
		dir := filepath.Join(cfg.BasePath, "mipmap-"+d.Name)
		for _, name := range names {
			path := filepath.Join(dir, name)
			if err := writeIcon(d.Size, d.Size, rule, path); err != nil {
				return err
			}
			logrus.Infof("created %s (%dx%d)", path, d.Size, d.Size)
		}
	}
	return nil
}

func main() {
	if err := generateLauncherIcons(defaultConfig()); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("all launcher icons created")
}
