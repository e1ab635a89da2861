package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/pkg/errors"
)

// Attachment is an image staged for upload alongside a create or update. The
// bytes are held in memory so a failed save can be retried with the same
// content instead of a drained reader.
type Attachment struct {
	FileName string
	Data     []byte
}

// Resource gives one entity type the standard five operations. Attachment
// capable resources always send create/update as a multipart envelope with a
// "data" JSON part and an optional "image" part; the rest send plain JSON.
type Resource[T any] struct {
	c             *Client
	name          string
	basePath      string
	hasAttachment bool
}

func NewResource[T any](c *Client, name, basePath string, hasAttachment bool) *Resource[T] {
	return &Resource[T]{c: c, name: name, basePath: basePath, hasAttachment: hasAttachment}
}

// Name is the human label used in error and log messages.
func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	if err := r.c.do(ctx, http.MethodGet, r.basePath, nil, nil, "", &records); err != nil {
		return nil, errors.Wrapf(err, "failed to list %s records", r.name)
	}
	return records, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int) (T, error) {
	var record T
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.basePath, id), nil, nil, "", &record); err != nil {
		return record, errors.Wrapf(err, "failed to get %s %d", r.name, id)
	}
	return record, nil
}

// Create sends the payload and returns the server-assigned record. The payload
// never carries an id; the backend mints one.
func (r *Resource[T]) Create(ctx context.Context, payload map[string]interface{}, attachment *Attachment) (T, error) {
	var record T
	body, contentType, err := r.encodeBody(payload, attachment)
	if err != nil {
		return record, err
	}
	if err := r.c.do(ctx, http.MethodPost, r.basePath, nil, body, contentType, &record); err != nil {
		return record, errors.Wrapf(err, "failed to create %s", r.name)
	}
	return record, nil
}

// Update sends a partial payload keyed by id. Fields absent from the payload
// are left untouched by the backend.
func (r *Resource[T]) Update(ctx context.Context, id int, payload map[string]interface{}, attachment *Attachment) (T, error) {
	var record T
	body, contentType, err := r.encodeBody(payload, attachment)
	if err != nil {
		return record, err
	}
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.basePath, id), nil, body, contentType, &record); err != nil {
		return record, errors.Wrapf(err, "failed to update %s %d", r.name, id)
	}
	return record, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	if err := r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.basePath, id), nil, nil, "", nil); err != nil {
		return errors.Wrapf(err, "failed to delete %s %d", r.name, id)
	}
	return nil
}

func (r *Resource[T]) encodeBody(payload map[string]interface{}, attachment *Attachment) (io.Reader, string, error) {
	if !r.hasAttachment {
		if attachment != nil {
			return nil, "", errors.Errorf("%s records do not accept attachments", r.name)
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to encode %s payload", r.name)
		}
		return bytes.NewReader(encoded), "application/json", nil
	}
	return encodeMultipart(payload, attachment)
}

// encodeMultipart builds the envelope the image-bearing endpoints expect: a
// "data" part holding the JSON payload plus an optional "image" file part.
func encodeMultipart(payload map[string]interface{}, attachment *Attachment) (io.Reader, string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to encode payload for multipart body")
	}

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="data"`)
	header.Set("Content-Type", "application/json")
	dataPart, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create data part")
	}
	if _, err := dataPart.Write(encoded); err != nil {
		return nil, "", errors.Wrap(err, "failed to write data part")
	}

	if attachment != nil {
		imagePart, err := writer.CreateFormFile("image", attachment.FileName)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to create image part")
		}
		if _, err := imagePart.Write(attachment.Data); err != nil {
			return nil, "", errors.Wrap(err, "failed to write image part")
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to finalize multipart body")
	}
	return buf, writer.FormDataContentType(), nil
}
