// Package storage talks to the hosted object storage service that keeps
// book cover images.  The service exposes a bucket-scoped REST API:
// upload by path (overwrite disabled), public URL construction from a
// stored path, and delete by path.  Everything else (auth, replication,
// serving) is the collaborator's problem.
package storage

import (
    "context"
    "errors"
    "fmt"
    "io"
    "net/http"
    "path"
    "strings"
    "time"

    "github.com/google/uuid"
)

// MaxCoverBytes is the upload size ceiling; bigger files are rejected
// before any network transfer.
const MaxCoverBytes = 5 * 1024 * 1024

// allowedMIME is the cover upload allow-list.  The declared content type
// is checked, matching the storefront's pre-upload validation.
var allowedMIME = map[string]string{
    "image/jpeg": "jpg",
    "image/jpg":  "jpg",
    "image/png":  "png",
    "image/webp": "webp",
    "image/gif":  "gif",
}

// Validation errors surfaced to the admin before any remote call.
var (
    ErrCoverType     = errors.New("invalid file type: upload JPG, PNG, WebP or GIF images only")
    ErrCoverTooLarge = errors.New("file too large: upload an image smaller than 5MB")
)

// Covers is a client for the cover image bucket.
type Covers struct {
    http    *http.Client
    baseURL string // e.g. https://project.example.com/storage/v1
    bucket  string
    key     string // bearer token, may be empty for public buckets
}

// NewCovers builds a client.  baseURL must not end with a slash.
func NewCovers(baseURL, bucket, key string) *Covers {
    return &Covers{
        http:    &http.Client{Timeout: 30 * time.Second},
        baseURL: strings.TrimRight(baseURL, "/"),
        bucket:  bucket,
        key:     key,
    }
}

// ValidateCover checks the declared MIME type against the allow-list and
// the size against the 5 MB ceiling.  It runs before any bytes leave the
// process.
func ValidateCover(contentType string, size int64) error {
    if _, ok := allowedMIME[strings.ToLower(contentType)]; !ok {
        return ErrCoverType
    }
    if size > MaxCoverBytes {
        return ErrCoverTooLarge
    }
    return nil
}

// Upload validates and then stores the cover under a generated
// covers/<uuid>.<ext> path with overwrite disabled and a cache-control
// hint, returning the stored path for the book record.
func (c *Covers) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
    if err := ValidateCover(contentType, size); err != nil {
        return "", err
    }
    objectPath := fmt.Sprintf("covers/%s.%s", uuid.NewString(), coverExt(filename, contentType))

    req, err := http.NewRequestWithContext(ctx, http.MethodPost,
        fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, objectPath), r)
    if err != nil {
        return "", err
    }
    req.ContentLength = size
    req.Header.Set("Content-Type", contentType)
    req.Header.Set("Cache-Control", "max-age=3600")
    req.Header.Set("x-upsert", "false")
    if c.key != "" {
        req.Header.Set("Authorization", "Bearer "+c.key)
    }

    resp, err := c.http.Do(req)
    if err != nil {
        return "", err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
        return "", fmt.Errorf("storage upload failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
    }
    return objectPath, nil
}

// PublicURL turns a stored path into a browser-reachable URL.  Absolute
// URLs pass through untouched and an empty reference yields "".
func (c *Covers) PublicURL(ref string) string {
    if ref == "" {
        return ""
    }
    if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
        return ref
    }
    return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, ref)
}

// Delete removes the object under a stored path.  Empty references and
// absolute URLs (covers hosted elsewhere) are skipped.
func (c *Covers) Delete(ctx context.Context, ref string) error {
    if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
        return nil
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
        fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, ref), nil)
    if err != nil {
        return err
    }
    if c.key != "" {
        req.Header.Set("Authorization", "Bearer "+c.key)
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return fmt.Errorf("storage delete failed: %s", resp.Status)
    }
    return nil
}

// coverExt picks the object extension from the original filename, falling
// back to the extension implied by the MIME type.
func coverExt(filename, contentType string) string {
    if ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), "."); ext != "" {
        return ext
    }
    return allowedMIME[strings.ToLower(contentType)]
}
