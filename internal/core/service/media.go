package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/propchase/rental-api/internal/core/ports"
)

const fetchTimeout = 15 * time.Second
const maxImageBytes = 10 << 20 // 10 MiB

// MediaService stores photos in the injected byte store and hands opaque
// refs back to the caller. The core never interprets the refs.
type MediaService struct {
	store  ports.ImageStore
	client *http.Client
	logger zerolog.Logger
}

func NewMediaService(store ports.ImageStore, logger zerolog.Logger) *MediaService {
	return &MediaService{
		store:  store,
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// StoreUpload persists an uploaded file and returns its ref.
func (s *MediaService) StoreUpload(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "jpg"
	}

	ref, err := s.store.Store(ctx, io.LimitReader(r, maxImageBytes), ext, contentType)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to store upload")
		return "", err
	}
	return ref, nil
}

// ImportFromURL downloads an image and stores it, returning its ref.
func (s *MediaService) ImportFromURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("import image: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("import image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("import image: unexpected status %d", resp.StatusCode)
	}

	ext := "jpg"
	if e := strings.TrimPrefix(path.Ext(url), "."); e != "" && len(e) <= 4 {
		ext = e
	}

	ref, err := s.store.Store(ctx, io.LimitReader(resp.Body, maxImageBytes), ext, resp.Header.Get("Content-Type"))
	if err != nil {
		s.logger.Error().Err(err).Str("url", url).Msg("failed to store imported image")
		return "", err
	}

	s.logger.Info().Str("ref", ref).Msg("image imported")
	return ref, nil
}
