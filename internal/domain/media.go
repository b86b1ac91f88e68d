package domain

// Message is the chat payload; its JSON shape is the webhook body.
type Message struct {
	IconURL  string `json:"icon_url"`
	Username string `json:"username"`
	Channel  string `json:"channel"`
	Text     string `json:"text"`
}

// MediaDescriptor is one unit of work: fetch, store and notify a single media item.
// A descriptor without URL only carries a notification.
type MediaDescriptor struct {
	PostID       string
	ReblogKey    string
	URL          string
	IsFirst      bool
	IsLast       bool
	Notification *Message
}

func (d MediaDescriptor) Fetchable() bool {
	return d.URL != ""
}
