package savestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// zstd frame magic number
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type fileStore struct {
	dir      string
	compress bool
	enc      *zstd.Encoder
	dec      *zstd.Decoder
}

// OpenFile stores each key as one file under dir. Compressed and plain
// files are both readable regardless of the compress setting.
func OpenFile(dir string, compress bool) (Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%s: empty save directory", ErrMsgOpenFailed)
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}

	return &fileStore{dir: dir, compress: compress, enc: enc, dec: dec}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+saveFileExt)
}

func (s *fileStore) Load(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}

	if !bytes.HasPrefix(raw, zstdMagic) {
		return raw, nil
	}
	data, err := s.dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return data, nil
}

// Save writes to a temporary file and renames it over the target
func (s *fileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if s.compress {
		data = s.enc.EncodeAll(data, nil)
	}

	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.FromContext(ctx).Warn(LogMsgTempCleanupFail, "path", tmpName, "error", rmErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		cleanup()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		cleanup()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", ErrMsgDeleteFailed, err)
	}
	return nil
}

func (s *fileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

func (s *fileStore) Close() error {
	s.dec.Close()
	return s.enc.Close()
}
