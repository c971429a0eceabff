package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterDispatchesOnHeader(t *testing.T) {
	var got []string
	r := NewRouter("kind", nil, nil)
	r.Register("a", HandlerFunc(func(_ context.Context, msg *Message) error {
		got = append(got, "a:"+string(msg.Key))
		return nil
	}))
	r.Register("b", HandlerFunc(func(_ context.Context, _ *Message) error {
		return errors.New("boom")
	}))

	require.NoError(t, r.Handle(context.Background(), &Message{Key: []byte("1"), Headers: map[string]string{"kind": "a"}}))
	assert.Error(t, r.Handle(context.Background(), &Message{Headers: map[string]string{"kind": "b"}}))
	assert.Equal(t, []string{"a:1"}, got)
}

func TestRouterUnknownKind(t *testing.T) {
	t.Run("skips without fallback", func(t *testing.T) {
		r := NewRouter("kind", nil, nil)
		assert.NoError(t, r.Handle(context.Background(), &Message{Headers: map[string]string{"kind": "zzz"}}))
	})

	t.Run("uses fallback", func(t *testing.T) {
		called := false
		r := NewRouter("kind", nil, HandlerFunc(func(_ context.Context, _ *Message) error {
			called = true
			return nil
		}))
		require.NoError(t, r.Handle(context.Background(), &Message{}))
		assert.True(t, called)
	})
}
