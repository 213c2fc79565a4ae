package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeFileHeader(t *testing.T, field, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestUploadStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	if err != nil {
		t.Fatalf("NewUploadStore failed: %v", err)
	}

	fh := makeFileHeader(t, "image", "logo.png", "image/png", "png-bytes")
	publicPath, err := store.Save(fh)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasPrefix(publicPath, PublicPrefix+"/") {
		t.Errorf("Expected public path under %s, got %s", PublicPrefix, publicPath)
	}
	if !strings.HasSuffix(publicPath, ".png") {
		t.Errorf("Expected extension to be kept, got %s", publicPath)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 stored file, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Stored content mismatch: %q", data)
	}
}

func TestUploadStore_RejectsNonImage(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadStore failed: %v", err)
	}

	fh := makeFileHeader(t, "image", "notes.txt", "text/plain", "hello")
	if _, err := store.Save(fh); err != ErrNotAnImage {
		t.Errorf("Expected ErrNotAnImage, got %v", err)
	}
}

func TestUploadStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	if err != nil {
		t.Fatalf("NewUploadStore failed: %v", err)
	}

	fh := makeFileHeader(t, "image", "logo.png", "image/png", "png-bytes")
	publicPath, err := store.Save(fh)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Remove(publicPath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected empty dir after remove, got %d entries", len(entries))
	}

	// removing again is not an error
	if err := store.Remove(publicPath); err != nil {
		t.Errorf("Expected removing a missing file to succeed, got %v", err)
	}
}
