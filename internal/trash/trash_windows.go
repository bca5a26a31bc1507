//go:build windows

package trash

import (
	"log"

	"golang.org/x/sys/windows"

	"github.com/dhqdev/limpeza-david/internal/platform"
)

var (
	modShell32          = windows.NewLazySystemDLL("shell32.dll")
	procEmptyRecycleBin = modShell32.NewProc("SHEmptyRecycleBinW")
)

const (
	sherbNoConfirmation = 0x00000001
	sherbNoProgressUI   = 0x00000002
	sherbNoSound        = 0x00000004

	// E_UNEXPECTED means the bin was already empty.
	eUnexpected = 0x8000FFFF
)

// empty calls SHEmptyRecycleBinW on all drives.
func empty(_ *platform.Paths, logger *log.Logger) bool {
	flags := uintptr(sherbNoConfirmation | sherbNoProgressUI | sherbNoSound)
	ret, _, _ := procEmptyRecycleBin.Call(0, 0, flags)

	hr := uint32(ret)
	if hr != 0 && hr != eUnexpected {
		logger.Printf("[ERROR] SHEmptyRecycleBinW failed: HRESULT 0x%08x", hr)
		return false
	}
	return true
}
