package storage

import (
	"context"
	"net/url"
	"strings"
)

// PublicURLResolver builds browser-accessible URLs for public objects.
//
//	base "http://localhost:9000"          -> http://localhost:9000/photos/photo1.jpg
//	base "https://storage.googleapis.com" -> https://storage.googleapis.com/photos/photo1.jpg
//	base "/blobs"                         -> /blobs/photos/photo1.jpg
type PublicURLResolver struct {
	base string
}

// NewPublicURLResolver returns a resolver rooted at base.
func NewPublicURLResolver(base string) *PublicURLResolver {
	return &PublicURLResolver{base: strings.TrimRight(base, "/")}
}

// Resolve returns the serving URL for the object at path.
func (r *PublicURLResolver) Resolve(_ context.Context, path string) (string, error) {
	bucket, object, err := SplitPath(path)
	if err != nil {
		return "", err
	}

	segments := strings.Split(object, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return r.base + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/"), nil
}
