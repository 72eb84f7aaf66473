package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAPIError(t *testing.T) {
	t.Run("wraps an arbitrary failure once", func(t *testing.T) {
		cause := errors.New("connection reset")

		err := wrapAPIError("chat.postMessage", cause)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "chat.postMessage", apiErr.Method)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("wrapping is idempotent", func(t *testing.T) {
		once := wrapAPIError("chat.postMessage", errors.New("boom"))
		twice := wrapAPIError("chat.postMessage", once)
		thrice := wrapAPIError("conversations.list", twice)

		assert.Same(t, once, twice)
		assert.Same(t, once, thrice)
		assert.Equal(t, once.Error(), thrice.Error())
	})

	t.Run("a message that merely looks normalized is still wrapped", func(t *testing.T) {
		impostor := fmt.Errorf("slack api error: user supplied this text")

		err := wrapAPIError("users.info", impostor)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.ErrorIs(t, err, impostor)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, wrapAPIError("users.info", nil))
	})
}

func TestAPIErrorMessages(t *testing.T) {
	t.Run("server error code", func(t *testing.T) {
		err := remoteError("conversations.history", "channel_not_found")
		assert.Equal(t, "slack api error: conversations.history failed with channel_not_found", err.Error())
	})

	t.Run("missing error code falls back", func(t *testing.T) {
		err := remoteError("conversations.history", "")
		assert.Equal(t, errCodeUnknown, err.Code)
	})

	t.Run("http status", func(t *testing.T) {
		err := statusError("files.getUploadURLExternal", 429)
		assert.Equal(t, "slack api error: files.getUploadURLExternal returned status 429", err.Error())
	})
}
