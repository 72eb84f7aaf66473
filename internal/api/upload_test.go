package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

// uploadFixture wires a fake API transport to a live httptest transfer
// endpoint, mirroring the real topology: slot and finalize go through
// the authenticated transport, raw bytes go straight to the presigned
// destination.
type uploadFixture struct {
	transport *fakeTransport
	client    *Client
	transfers int
}

func newUploadFixture(t *testing.T, transferStatus int) *uploadFixture {
	t.Helper()

	fx := &uploadFixture{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fx.transfers++
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file")
		require.NoError(t, err, "transfer must carry a single 'file' part")
		w.WriteHeader(transferStatus)
	}))
	t.Cleanup(srv.Close)

	slot := 0
	fx.transport = &fakeTransport{
		handler: func(method string, params Params, resp response) error {
			switch method {
			case "files.getUploadURLExternal":
				slot++
				r := resp.(*uploadSlotResponse)
				r.Ok = true
				r.UploadURL = srv.URL
				r.FileID = fmt.Sprintf("F%03d", slot)
			case "files.completeUploadExternal":
				r := resp.(*completeUploadResponse)
				r.Ok = true
			}
			return nil
		},
	}
	fx.client = newFakeClient(fx.transport)

	return fx
}

func (fx *uploadFixture) finalizeCalls() []fakeCall {
	var calls []fakeCall
	for _, call := range fx.transport.calls {
		if call.method == "files.completeUploadExternal" {
			calls = append(calls, call)
		}
	}
	return calls
}

func TestUploadFilesHappyPath(t *testing.T) {
	fx := newUploadFixture(t, http.StatusOK)

	first := writeTempFile(t, "notes.txt", "hello upload")
	second := writeTempFile(t, "report.csv", "a,b,c")

	var steps []string

	entries, err := fx.client.UploadFiles(context.Background(), UploadRequest{
		Channel: "C123",
		Comment: "weekly numbers",
		Files: []LocalFile{
			{Path: first, Title: "Notes"},
			{Path: second},
		},
		Progress: ProgressFunc(func(step string) { steps = append(steps, step) }),
	})
	require.NoError(t, err)

	t.Run("one entry per file in order", func(t *testing.T) {
		require.Len(t, entries, 2)
		assert.Equal(t, UploadFileEntry{ID: "F001", Title: "Notes"}, entries[0])
		assert.Equal(t, UploadFileEntry{ID: "F002"}, entries[1])
	})

	t.Run("slot requests carry filename and exact length", func(t *testing.T) {
		slotCall := fx.transport.calls[0]
		require.Equal(t, "files.getUploadURLExternal", slotCall.method)
		assert.Equal(t, "notes.txt", slotCall.params["filename"])
		assert.Equal(t, strconv.Itoa(len("hello upload")), slotCall.params["length"])
	})

	t.Run("finalize runs once with every entry", func(t *testing.T) {
		finalize := fx.finalizeCalls()
		require.Len(t, finalize, 1)

		var sent []UploadFileEntry
		require.NoError(t, json.Unmarshal([]byte(finalize[0].params["files"]), &sent))
		assert.Equal(t, entries, sent)

		assert.Equal(t, "C123", finalize[0].params["channel_id"])
		assert.Equal(t, "weekly numbers", finalize[0].params["initial_comment"])
		_, present := finalize[0].params["thread_ts"]
		assert.False(t, present)
	})

	t.Run("progress follows the step transitions", func(t *testing.T) {
		require.Len(t, steps, 5)
		assert.Contains(t, steps[0], "notes.txt")
		assert.Contains(t, steps[1], "transferred notes.txt")
		assert.Contains(t, steps[2], "report.csv")
		assert.Contains(t, steps[3], "transferred report.csv")
		assert.Contains(t, steps[4], "finalizing 2")
	})

	assert.Equal(t, 2, fx.transfers)
}

func TestUploadFilesFailFast(t *testing.T) {
	t.Run("transfer failure aborts before finalize", func(t *testing.T) {
		fx := newUploadFixture(t, http.StatusBadGateway)
		path := writeTempFile(t, "doomed.bin", "payload")

		_, err := fx.client.UploadFiles(context.Background(), UploadRequest{
			Channel: "C123",
			Files:   []LocalFile{{Path: path}, {Path: path}},
		})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)

		// Fail-fast: the first failure stops the batch, nothing is attached.
		assert.Equal(t, 1, fx.transfers)
		assert.Empty(t, fx.finalizeCalls())
	})

	t.Run("slot failure aborts before any transfer", func(t *testing.T) {
		fx := newUploadFixture(t, http.StatusOK)
		fx.transport.handler = func(method string, params Params, resp response) error {
			return remoteError(method, "upload_disabled")
		}
		path := writeTempFile(t, "doomed.bin", "payload")

		_, err := fx.client.UploadFiles(context.Background(), UploadRequest{
			Channel: "C123",
			Files:   []LocalFile{{Path: path}},
		})

		require.Error(t, err)
		assert.Equal(t, 0, fx.transfers)
		assert.Empty(t, fx.finalizeCalls())
	})

	t.Run("missing file aborts before any remote call", func(t *testing.T) {
		fx := newUploadFixture(t, http.StatusOK)

		_, err := fx.client.UploadFiles(context.Background(), UploadRequest{
			Channel: "C123",
			Files:   []LocalFile{{Path: filepath.Join(t.TempDir(), "missing")}},
		})

		require.Error(t, err)
		assert.Empty(t, fx.transport.calls)
	})
}

func TestUploadFilesValidation(t *testing.T) {
	fx := newUploadFixture(t, http.StatusOK)

	_, err := fx.client.UploadFiles(context.Background(), UploadRequest{Channel: "C123"})
	assert.Error(t, err)

	_, err = fx.client.UploadFiles(context.Background(), UploadRequest{
		Files: []LocalFile{{Path: "somewhere"}},
	})
	assert.Error(t, err)
}
