// Package blob implements the storage.Store contract over any
// S3-compatible blob service via the minio client.
package blob

import (
	"bufio"
	"context"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/inkmill/inkmill/config"
	"github.com/inkmill/inkmill/errors"
	"github.com/inkmill/inkmill/logger"
	"github.com/inkmill/inkmill/storage"
)

// Store is a thin read/listdir/write passthrough to an S3-compatible
// blob service. The address's container maps to the bucket and its path
// to the object key.
type Store struct {
	cfg config.BlobConfig
}

// New creates a blob store from configuration. Clients are built per
// address, since the endpoint may be derived from the address account.
func New(cfg config.BlobConfig) *Store {
	return &Store{cfg: cfg}
}

// clientFor builds a minio client for the address. The configured
// endpoint wins; otherwise the account names a blob service host. An
// address token of the form "access:secret" overrides the configured
// credentials.
func (s *Store) clientFor(addr storage.Address) (*minio.Client, error) {
	endpoint := strings.TrimSpace(s.cfg.Endpoint)
	if endpoint == "" {
		endpoint = addr.Account + ".blob.core.windows.net"
	}

	access, secret := s.cfg.AccessKey, s.cfg.SecretKey
	if addr.Token != "" {
		if a, b, ok := strings.Cut(addr.Token, ":"); ok {
			access, secret = a, b
		}
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: s.cfg.UseSSL,
		Region: s.cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "building blob client for %s", endpoint)
	}
	return client, nil
}

// Read returns the text lines of the object at url, without line
// terminators.
func (s *Store) Read(ctx context.Context, url string) ([]string, error) {
	addr, err := storage.ParseAddress(url)
	if err != nil {
		return nil, err
	}
	client, err := s.clientFor(addr)
	if err != nil {
		return nil, err
	}

	obj, err := client.GetObject(ctx, addr.Container, addr.Path, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", url)
	}
	defer obj.Close()

	var lines []string
	scanner := bufio.NewScanner(obj)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", url)
	}

	logger.Logger.Debugw("blob read", "url", url, "lines", len(lines))
	return lines, nil
}

// Listdir returns the object keys under the path at url, relative to
// that path and sorted.
func (s *Store) Listdir(ctx context.Context, url string) ([]string, error) {
	addr, err := storage.ParseAddress(url)
	if err != nil {
		return nil, err
	}
	client, err := s.clientFor(addr)
	if err != nil {
		return nil, err
	}

	prefix := strings.TrimSuffix(addr.Path, "/") + "/"
	entries := make([]string, 0, 32)
	for obj := range client.ListObjects(ctx, addr.Container, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, errors.Wrapf(obj.Err, "listing %s", url)
		}
		if obj.Key == "" {
			continue
		}
		entries = append(entries, strings.TrimPrefix(obj.Key, prefix))
	}
	sort.Strings(entries)
	return entries, nil
}

// Write stores content at url, replacing any existing object.
func (s *Store) Write(ctx context.Context, content string, url string) error {
	addr, err := storage.ParseAddress(url)
	if err != nil {
		return err
	}
	client, err := s.clientFor(addr)
	if err != nil {
		return err
	}

	reader := strings.NewReader(content)
	_, err = client.PutObject(ctx, addr.Container, addr.Path, reader, int64(reader.Len()), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return errors.Wrapf(err, "writing %s", url)
	}

	logger.Logger.Debugw("blob write", "url", url, "bytes", len(content))
	return nil
}

var _ storage.Store = (*Store)(nil)
