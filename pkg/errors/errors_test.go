package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesCodeSentinels(t *testing.T) {
	err := Network(New("connection reset"), "error downloading")

	assert.True(t, Is(err, ErrNetwork))
	assert.False(t, Is(err, ErrStorage))
	assert.True(t, Is(fmt.Errorf("wrapped: %w", err), ErrNetwork))
	assert.True(t, Is(Join(MalformedMedia("no body"), err), ErrMalformedMedia))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeLedger, GetCode(Ledger(New("denied"), "failed to put ledger item")))
	assert.Equal(t, CodeUpstream, GetCode(fmt.Errorf("run: %w", Upstream(New("401"), "failed to list likes"))))
	assert.Equal(t, "", GetCode(New("plain")))
	assert.Equal(t, "", GetCode(nil))
}
