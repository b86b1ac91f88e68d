package domain

import (
	"net/url"
	"path"
	"strings"

	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
)

var contentTypes = map[string]string{
	".jpg": "image/jpeg",
	".gif": "image/gif",
	".png": "image/png",
	".bmp": "image/x-bmp",
	".mp4": "image/mp4",
}

// StoredFileMeta names a stored file. Name is both the local file name and
// the object key. ContentType is empty for unknown extensions.
type StoredFileMeta struct {
	Name        string
	ContentType string
}

// NewStoredFileMeta derives the file meta from the trailing path segment of
// rawURL. URLs sharing that segment map to the same name.
func NewStoredFileMeta(rawURL string) (StoredFileMeta, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return StoredFileMeta{}, errors.MalformedMedia("unparsable media url " + rawURL)
	}

	name := path.Base(u.Path)
	if i := strings.IndexByte(name, ';'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "." || name == ".." || name == "/" || strings.HasSuffix(u.Path, "/") {
		return StoredFileMeta{}, errors.MalformedMedia("no file name in media url " + rawURL)
	}

	return StoredFileMeta{
		Name:        name,
		ContentType: ContentTypeOf(name),
	}, nil
}

// ContentTypeOf maps a file extension through the fixed table.
func ContentTypeOf(name string) string {
	return contentTypes[strings.ToLower(path.Ext(name))]
}
