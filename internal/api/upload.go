package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// ProgressReporter receives a human-readable line after each major
// step of an orchestrated upload.
type ProgressReporter interface {
	Report(step string)
}

// ProgressFunc adapts a plain function to ProgressReporter.
type ProgressFunc func(step string)

func (f ProgressFunc) Report(step string) { f(step) }

type noopProgress struct{}

func (noopProgress) Report(string) {}

// LocalFile names a file to upload, with an optional display title.
type LocalFile struct {
	Path  string
	Title string
}

// UploadRequest is one orchestrated upload: N local files bound to a
// channel (and optionally a thread) as a single message.
type UploadRequest struct {
	Channel  string
	ThreadTS string
	Comment  string
	Files    []LocalFile
	Progress ProgressReporter
}

// UploadFileEntry is what the slot step hands to the finalize step: the
// server-assigned file ID plus the optional title.
type UploadFileEntry struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

type uploadSlotResponse struct {
	Envelope
	UploadURL string `json:"upload_url"`
	FileID    string `json:"file_id"`
}

type completeUploadResponse struct {
	Envelope
	Files []UploadFileEntry `json:"files"`
}

// UploadFiles runs the three-step upload handshake for each file and
// finalizes the batch with one completeUploadExternal call. Files are
// processed sequentially so progress reporting stays deterministic and
// concurrent bandwidth against the upload endpoint stays bounded.
//
// The batch is fail-fast: any slot or transfer failure aborts before
// finalize, so a partial batch is never attached.
func (c *Client) UploadFiles(ctx context.Context, req UploadRequest) ([]UploadFileEntry, error) {
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("no files to upload")
	}
	if len(req.Channel) == 0 {
		return nil, fmt.Errorf("channel is required")
	}

	progress := req.Progress
	if progress == nil {
		progress = noopProgress{}
	}

	entries := make([]UploadFileEntry, 0, len(req.Files))

	for _, file := range req.Files {
		entry, err := c.uploadOne(ctx, file, progress)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	progress.Report(fmt.Sprintf("finalizing %d file(s)", len(entries)))

	return c.completeUpload(ctx, req, entries)
}

// uploadOne runs steps one and two for a single file: request an
// upload slot for the exact byte length, then transfer the raw bytes
// to the returned destination.
func (c *Client) uploadOne(ctx context.Context, file LocalFile, progress ProgressReporter) (*UploadFileEntry, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", file.Path, err)
	}

	filename := filepath.Base(file.Path)

	params := Params{}
	params.set("filename", filename)
	params.set("length", strconv.FormatInt(info.Size(), 10))

	var slot uploadSlotResponse
	if err := c.call(ctx, "files.getUploadURLExternal", params, &slot); err != nil {
		return nil, err
	}

	progress.Report(fmt.Sprintf("acquired upload slot for %s (%d bytes)", filename, info.Size()))

	if err := c.transferUpload(ctx, slot.UploadURL, filename, f); err != nil {
		return nil, err
	}

	progress.Report(fmt.Sprintf("transferred %s", filename))

	return &UploadFileEntry{ID: slot.FileID, Title: file.Title}, nil
}

// transferUpload posts the raw bytes to the presigned destination from
// the slot step. This endpoint sits outside the authenticated API
// surface, so failures carry the raw HTTP status.
func (c *Client) transferUpload(ctx context.Context, uploadURL, filename string, body io.Reader) error {
	res, err := c.uploads.R().
		SetContext(ctx).
		SetFileReader("file", filename, body).
		Post(uploadURL)

	if err != nil {
		return wrapAPIError("upload.transfer", err)
	}
	if res.IsError() {
		return statusError("upload.transfer", res.StatusCode())
	}

	return nil
}

// completeUpload binds all transferred files to the target channel or
// thread as one visible message.
func (c *Client) completeUpload(ctx context.Context, req UploadRequest, entries []UploadFileEntry) ([]UploadFileEntry, error) {
	encoded, err := json.Marshal(entries)
	if err != nil {
		return nil, wrapAPIError("files.completeUploadExternal", err)
	}

	params := Params{}
	params.set("files", string(encoded))
	params.set("channel_id", req.Channel)
	params.setOptional("thread_ts", req.ThreadTS)
	params.setOptional("initial_comment", req.Comment)

	var resp completeUploadResponse
	if err := c.call(ctx, "files.completeUploadExternal", params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Files) > 0 {
		return resp.Files, nil
	}
	return entries, nil
}
