package domain

const (
	PostTypePhoto = "photo"
	PostTypeVideo = "video"
)

// Post is one liked post. The concrete types are PhotoPost, VideoPost and OtherPost.
type Post interface {
	Meta() PostMeta
	isPost()
}

type PostMeta struct {
	ID        string // Post ID from Tumblr, kept as a string
	ReblogKey string
	PostURL   string
}

func (m PostMeta) Meta() PostMeta { return m }

// Photo is one entry of a photoset. OriginalURL is empty for entries that
// came without an original size.
type Photo struct {
	OriginalURL string
}

type PhotoPost struct {
	PostMeta
	Photos []Photo
}

type VideoPost struct {
	PostMeta
	VideoURL  string
	VideoType string // provider, e.g. "tumblr", "vine", "flickr"
}

type OtherPost struct {
	PostMeta
	TypeName string
}

func (PhotoPost) isPost() {}
func (VideoPost) isPost() {}
func (OtherPost) isPost() {}
