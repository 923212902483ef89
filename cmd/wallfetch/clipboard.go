package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

const maxURLLength = 2048

// ErrInvalidClipboardURL indicates the clipboard content is not a usable URL.
var ErrInvalidClipboardURL = errors.New("clipboard does not contain a valid URL")

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

// extractURL returns text as a URL if it is a single http(s) link.
func extractURL(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxURLLength || strings.ContainsAny(text, "\n\r") {
		return "", ErrInvalidClipboardURL
	}

	u, err := url.Parse(text)
	if err != nil || u.Host == "" {
		return "", ErrInvalidClipboardURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidClipboardURL
	}
	return text, nil
}

// urlArg picks the image URL from the positional argument or, with
// --clipboard, from the system clipboard.
func urlArg(args []string, fromClipboard bool) (string, error) {
	if fromClipboard {
		if len(args) > 0 {
			return "", errors.New("pass either a url or --clipboard, not both")
		}
		text, err := readClipboard()
		if err != nil {
			return "", fmt.Errorf("reading clipboard: %w", err)
		}
		return extractURL(text)
	}
	if len(args) != 1 {
		return "", errors.New("expected exactly one url")
	}
	return args[0], nil
}
