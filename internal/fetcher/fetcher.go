package fetcher

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock.go
type Client interface {
	// Fetch downloads the whole body behind url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
