//go:build !windows

package trash

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dhqdev/limpeza-david/internal/platform"
)

// empty clears the contents of each user trash directory. The directories
// themselves are kept. Per-entry failures are logged and do not stop the
// pass; success means every entry that existed was removed.
func empty(paths *platform.Paths, logger *log.Logger) bool {
	ok := true

	for _, dir := range paths.TrashDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			logger.Printf("[ERROR] cannot read trash dir %s: %v", dir, err)
			ok = false
			continue
		}

		for _, entry := range entries {
			target := filepath.Join(dir, entry.Name())
			if err := os.RemoveAll(target); err != nil {
				logger.Printf("[ERROR] cannot remove %s: %v", target, err)
				ok = false
			}
		}
	}

	return ok
}
