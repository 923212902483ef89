package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubDisplays(t *testing.T, n int, w, h int) {
	t.Helper()
	origNum, origBounds := numDisplays, displayBounds
	numDisplays = func() int { return n }
	displayBounds = func(int) (int, int) { return w, h }
	t.Cleanup(func() {
		numDisplays, displayBounds = origNum, origBounds
	})
}

func TestResolution(t *testing.T) {
	stubDisplays(t, 2, 2560, 1440)

	res, err := Resolution()
	assert.NoError(t, err)
	assert.Equal(t, "2560x1440", res)
}

func TestGetScreenDimensions_NoDisplay(t *testing.T) {
	stubDisplays(t, 0, 0, 0)

	_, _, err := GetScreenDimensions()
	assert.Error(t, err)
}

func TestGetScreenDimensions_InvalidBounds(t *testing.T) {
	stubDisplays(t, 1, 0, 1080)

	_, err := Resolution()
	assert.Error(t, err)
}
