package quotepdf

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/alnah/go-quotepdf/internal/fileutil"
	"github.com/disintegration/imaging"
)

// Compile-time interface implementation checks.
var _ ImageResolver = (*httpResolver)(nil)

// ImageResolver fetches an image by URL and returns it serialized as PNG.
// Resolve returns nil for every failure mode (bad URL, HTTP error,
// undecodable payload, timeout) so a joint wait over many fetches can never
// fail. Implementations must be safe for concurrent use.
type ImageResolver interface {
	Resolve(ctx context.Context, url string) []byte
}

// maxImageBytes caps each image download to guard against decode bombs.
const maxImageBytes = 8 << 20

// httpResolver fetches images over HTTP and normalizes them to PNG.
type httpResolver struct {
	client  *http.Client
	timeout time.Duration
}

func newHTTPResolver(client *http.Client, timeout time.Duration) *httpResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpResolver{client: client, timeout: timeout}
}

// Resolve downloads url, decodes the image, and re-encodes it as PNG.
// The per-fetch timeout bounds the whole request including the body read.
func (r *httpResolver) Resolve(ctx context.Context, url string) []byte {
	if !fileutil.IsURL(url) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	src, err := imaging.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil
	}

	// Redraw onto an off-screen buffer at natural size and serialize
	// losslessly, so every cached payload is PNG regardless of source format.
	buf := imaging.Clone(src)
	var out bytes.Buffer
	if err := imaging.Encode(&out, buf, imaging.PNG); err != nil {
		return nil
	}
	return out.Bytes()
}
