// Package storage defines the object-storage contract used to read and
// write parameterized artifacts at remote locations, addressed by
// structured blob URLs.
package storage

import (
	"context"
	"net/url"
	"strings"

	"github.com/inkmill/inkmill/errors"
)

// Store reads and writes text artifacts at blob addresses.
type Store interface {
	// Read returns the text lines of the object at url.
	Read(ctx context.Context, url string) ([]string, error)

	// Listdir returns the entries under the path at url.
	Listdir(ctx context.Context, url string) ([]string, error)

	// Write stores content at url, replacing any existing object.
	Write(ctx context.Context, content string, url string) error
}

// Address is a parsed blob storage location:
//
//	blob://<account>/<container>/<path/to/object>?token=<credentials>
type Address struct {
	Account   string
	Container string
	Path      string
	Token     string
}

// ParseAddress splits a blob URL into its address fields. A malformed
// URL fails with errors.ErrInvalidLocation.
func ParseAddress(raw string) (Address, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "blob" || u.Host == "" {
		return Address{}, invalidLocation(raw)
	}

	container, path, ok := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if !ok || container == "" || path == "" {
		return Address{}, invalidLocation(raw)
	}

	return Address{
		Account:   u.Host,
		Container: container,
		Path:      path,
		Token:     u.Query().Get("token"),
	}, nil
}

func invalidLocation(raw string) error {
	return errors.Mark(
		errors.Newf("invalid blob storage url %q", raw),
		errors.ErrInvalidLocation,
	)
}
