package api

import (
	"context"

	"github.com/dixieflatline76/Wallfetch/pkg/history"
	"github.com/dixieflatline76/Wallfetch/pkg/wallhaven"
	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of WallpaperService.
type MockService struct {
	mock.Mock
}

func (m *MockService) GetData(ctx context.Context, minResolution, apiKey string) ([]wallhaven.ImageRecord, error) {
	args := m.Called(ctx, minResolution, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wallhaven.ImageRecord), args.Error(1)
}

func (m *MockService) DownloadImage(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}

func (m *MockService) LoadAndSetWallpaper(ctx context.Context, url string) (string, bool, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockService) SetWallpaper(path string) bool {
	return m.Called(path).Bool(0)
}

func (m *MockService) SetDirectory(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockService) GetDirectory() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockService) History(ctx context.Context, limit int) ([]history.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]history.Entry), args.Error(1)
}
