package snapshot

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// Clipboard is the optional copy-to-clipboard capability. Implementations
// report success instead of returning errors: the copy is best-effort and
// never affects the run's outcome.
type Clipboard interface {
	TryCopy(text string) bool
}

// SystemClipboard copies through the platform clipboard mechanism
// (pbcopy/xclip/clip, wrapped by the clipboard library).
type SystemClipboard struct {
	logger *zap.Logger
}

// NewSystemClipboard returns a clipboard backed by the host system.
func NewSystemClipboard(logger *zap.Logger) *SystemClipboard {
	return &SystemClipboard{logger: logger}
}

// TryCopy places text on the system clipboard, logging failures at debug
// level only. SSH sessions and headless machines commonly lack a clipboard.
func (c *SystemClipboard) TryCopy(text string) bool {
	if clipboard.Unsupported {
		c.logger.Debug("Clipboard is not supported on this platform")
		return false
	}
	if err := clipboard.WriteAll(text); err != nil {
		c.logger.Debug("Failed to copy to clipboard", zap.Error(err))
		return false
	}
	return true
}

// NopClipboard always reports failure. Useful in tests and non-interactive
// environments.
type NopClipboard struct{}

// TryCopy discards the text.
func (NopClipboard) TryCopy(string) bool { return false }
