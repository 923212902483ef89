package wallpaper

import (
	"errors"
	"sync"
)

// ChromeOS implements the OS interface for Crostini, where the Linux container
// cannot touch the desktop. A connected browser extension does it instead.
type ChromeOS struct {
	mu             sync.Mutex
	bridgeCallback func(string) error
}

// SetWallpaper delegates to the bridge callback.
func (c *ChromeOS) SetWallpaper(path string) error {
	c.mu.Lock()
	cb := c.bridgeCallback
	c.mu.Unlock()

	if cb == nil {
		return errors.New("chrome extension bridge not connected")
	}
	return cb(path)
}

// RegisterBridge registers the callback function.
func (c *ChromeOS) RegisterBridge(cb func(string) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bridgeCallback = cb
}

// Bridge is implemented by platforms that hand the wallpaper off to an external
// client.
type Bridge interface {
	RegisterBridge(cb func(string) error)
}
