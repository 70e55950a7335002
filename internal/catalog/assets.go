package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	assetsPrefix   = "/assets/"
	screenshotsDir = "screenshots/"
)

// AssetPaths lists the files, relative to the assets directory, that the
// catalog links to: screenshots and documents served under /assets/.
func (c *Catalog) AssetPaths() []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, p := range c.projects {
		base := p.Common()
		if base.Image != "" {
			add(screenshotsDir + base.Image)
		}
		if strings.HasPrefix(base.Link, assetsPrefix) {
			add(strings.TrimPrefix(base.Link, assetsPrefix))
		}
	}
	return paths
}

// MissingAssets returns the AssetPaths that do not exist under dir
func (c *Catalog) MissingAssets(dir string) ([]string, error) {
	var missing []string
	for _, p := range c.AssetPaths() {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p)))
		if errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, p)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check asset %s: %w", p, err)
		}
	}
	return missing, nil
}
