package storageimpl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/internal/storage"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
)

// LocalSink writes files into a single directory.
type LocalSink struct {
	dir    string
	logger logger.Logger
}

func NewLocal(opts Opts) *LocalSink {
	return newLocal(opts.Config.Storage.LocalPath, opts.Logger)
}

func newLocal(dir string, log logger.Logger) *LocalSink {
	return &LocalSink{
		dir:    dir,
		logger: log.WithComponent("LocalSink"),
	}
}

var _ storage.Sink = (*LocalSink)(nil)

func (l *LocalSink) Store(_ context.Context, body []byte, meta domain.StoredFileMeta) (string, error) {
	if err := os.Mkdir(l.dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return "", errors.Storage(err, "failed to create directory "+l.dir)
	}

	path := filepath.Join(l.dir, meta.Name)
	if err := writeFileAtomic(l.dir, path, body); err != nil {
		return "", errors.Storage(err, "failed to write file "+path)
	}

	l.logger.Debug("File saved", "path", path, "bytes", len(body))
	return fmt.Sprintf("Saved to Local: %s", path), nil
}

// writeFileAtomic writes body to a temp file in dir and renames it over path,
// so concurrent writers of one name leave exactly one of the bodies.
func writeFileAtomic(dir, path string, body []byte) error {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
