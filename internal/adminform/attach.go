package adminform

import (
	"context"
	"fmt"
	"io"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}

// Attach uploads body and, on success, writes the returned URL into the
// draft through set. On failure the draft is left as it was and the error is
// recorded on the form.
func Attach[D any](ctx context.Context, f *Form[D], up Uploader, folder, filename, contentType string, body io.Reader, set func(d *D, url string)) (string, error) {
	if f.Mode() == ModeClosed {
		return "", ErrNotOpen
	}
	url, err := up.Upload(ctx, folder, filename, contentType, body)
	if err != nil {
		err = fmt.Errorf("upload %s: %w", filename, err)
		f.setLastError(err)
		return "", err
	}
	if err := f.Update(func(d *D) { set(d, url) }); err != nil {
		return "", err
	}
	return url, nil
}
