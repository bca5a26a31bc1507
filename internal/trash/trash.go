// Package trash empties the OS recycle bin / trash. The operation is
// deliberately best-effort and fire-and-forget: it returns a boolean
// success flag and never an error, and it bypasses the file-list model —
// on Windows the Shell API exposes no per-file view to filter.
package trash

import (
	"log"

	"github.com/dhqdev/limpeza-david/internal/platform"
)

// Empty empties the trash for the current OS family.
func Empty(paths *platform.Paths, logger *log.Logger) bool {
	ok := empty(paths, logger)
	if ok {
		logger.Printf("[INFO] trash emptied")
	} else {
		logger.Printf("[WARN] trash could not be emptied")
	}
	return ok
}
