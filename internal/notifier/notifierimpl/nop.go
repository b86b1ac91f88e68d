package notifierimpl

import (
	"context"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/internal/notifier"
)

// Nop drops every message.
type Nop struct{}

var _ notifier.Client = Nop{}

func (Nop) Notify(context.Context, *domain.Message) error { return nil }
