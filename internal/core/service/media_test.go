package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubImageStore struct {
	stored []string
	data   []byte
}

func (s *stubImageStore) Store(_ context.Context, r io.Reader, ext, _ string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.data = b
	ref := "photos/test." + ext
	s.stored = append(s.stored, ref)
	return ref, nil
}

func TestMediaStoreUpload(t *testing.T) {
	store := &stubImageStore{}
	svc := NewMediaService(store, zerolog.Nop())

	ref, err := svc.StoreUpload(context.Background(), strings.NewReader("fake-png"), "house.png", "image/png")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if ref != "photos/test.png" {
		t.Fatalf("unexpected ref %q", ref)
	}
	if string(store.data) != "fake-png" {
		t.Fatalf("bytes not passed through: %q", store.data)
	}
}

func TestMediaStoreUploadDefaultExtension(t *testing.T) {
	store := &stubImageStore{}
	svc := NewMediaService(store, zerolog.Nop())

	ref, err := svc.StoreUpload(context.Background(), strings.NewReader("x"), "no-extension", "")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasSuffix(ref, ".jpg") {
		t.Fatalf("expected jpg fallback, got %q", ref)
	}
}

func TestMediaImportFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	store := &stubImageStore{}
	svc := NewMediaService(store, zerolog.Nop())

	ref, err := svc.ImportFromURL(context.Background(), server.URL+"/photo.jpg")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if ref == "" {
		t.Fatalf("expected a ref")
	}
	if string(store.data) != "jpeg-bytes" {
		t.Fatalf("fetched bytes not stored: %q", store.data)
	}
}

func TestMediaImportFromURLUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewMediaService(&stubImageStore{}, zerolog.Nop())
	if _, err := svc.ImportFromURL(context.Background(), server.URL+"/missing.jpg"); err == nil {
		t.Fatalf("expected error for upstream 404")
	}
}
