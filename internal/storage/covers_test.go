package storage_test

import (
    "bytes"
    "context"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/veena-verse/bookshop-backend/internal/storage"
)

func TestValidateCover(t *testing.T) {
    assert.NoError(t, storage.ValidateCover("image/png", 2*1024*1024))
    assert.NoError(t, storage.ValidateCover("image/webp", storage.MaxCoverBytes))
    assert.ErrorIs(t, storage.ValidateCover("image/png", 6*1024*1024), storage.ErrCoverTooLarge)
    assert.ErrorIs(t, storage.ValidateCover("application/pdf", 100), storage.ErrCoverType)
    assert.ErrorIs(t, storage.ValidateCover("", 100), storage.ErrCoverType)
}

func TestUploadRejectsBeforeNetwork(t *testing.T) {
    hit := false
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        hit = true
        w.WriteHeader(http.StatusOK)
    }))
    defer srv.Close()

    c := storage.NewCovers(srv.URL, "book-covers", "")

    // 6 MB file: rejected with no request made.
    _, err := c.Upload(context.Background(), "big.png", "image/png", 6*1024*1024, bytes.NewReader(nil))
    assert.ErrorIs(t, err, storage.ErrCoverTooLarge)
    assert.False(t, hit, "oversized upload must not reach the storage service")

    // Wrong MIME type: same.
    _, err = c.Upload(context.Background(), "cover.pdf", "application/pdf", 100, bytes.NewReader(nil))
    assert.ErrorIs(t, err, storage.ErrCoverType)
    assert.False(t, hit)
}

func TestUploadSendsObjectRequest(t *testing.T) {
    var gotPath, gotUpsert, gotAuth, gotCache string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotPath = r.URL.Path
        gotUpsert = r.Header.Get("x-upsert")
        gotAuth = r.Header.Get("Authorization")
        gotCache = r.Header.Get("Cache-Control")
        w.WriteHeader(http.StatusOK)
    }))
    defer srv.Close()

    c := storage.NewCovers(srv.URL, "book-covers", "secret")
    payload := bytes.Repeat([]byte{0x89}, 2*1024*1024) // 2 MB "png"
    path, err := c.Upload(context.Background(), "My Cover.PNG", "image/png", int64(len(payload)), bytes.NewReader(payload))
    require.NoError(t, err)

    assert.True(t, strings.HasPrefix(path, "covers/"), "stored path %q", path)
    assert.True(t, strings.HasSuffix(path, ".png"))
    assert.True(t, strings.HasPrefix(gotPath, "/object/book-covers/covers/"))
    assert.Equal(t, "false", gotUpsert, "overwrite must be disabled")
    assert.Equal(t, "Bearer secret", gotAuth)
    assert.Equal(t, "max-age=3600", gotCache)
}

func TestUploadSurfacesServiceError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, `{"error":"bucket not found"}`, http.StatusNotFound)
    }))
    defer srv.Close()

    c := storage.NewCovers(srv.URL, "missing", "")
    _, err := c.Upload(context.Background(), "a.png", "image/png", 10, bytes.NewReader(make([]byte, 10)))
    require.Error(t, err)
    assert.Contains(t, err.Error(), "storage upload failed")
}

func TestPublicURL(t *testing.T) {
    c := storage.NewCovers("https://proj.example.com/storage/v1", "book-covers", "")
    assert.Equal(t, "", c.PublicURL(""))
    assert.Equal(t, "https://cdn.example.com/x.jpg", c.PublicURL("https://cdn.example.com/x.jpg"))
    assert.Equal(t,
        "https://proj.example.com/storage/v1/object/public/book-covers/covers/abc.png",
        c.PublicURL("covers/abc.png"))
}

func TestDeleteSkipsAbsoluteURLs(t *testing.T) {
    hit := false
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        hit = true
        assert.Equal(t, http.MethodDelete, r.Method)
        w.WriteHeader(http.StatusOK)
    }))
    defer srv.Close()

    c := storage.NewCovers(srv.URL, "book-covers", "")
    require.NoError(t, c.Delete(context.Background(), "https://elsewhere.example.com/cover.jpg"))
    assert.False(t, hit, "absolute URLs are not objects we own")

    require.NoError(t, c.Delete(context.Background(), "covers/abc.png"))
    assert.True(t, hit)
}
