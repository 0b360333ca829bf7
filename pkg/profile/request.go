package profile

import (
	"context"
	"io"
	"net/http"
)

// NewRequest builds an *http.Request for p with the full URL, bearer auth,
// and resolved custom headers already applied. It performs no network I/O;
// sending the request stays with the caller. Resolved headers are applied
// after auth, so a custom Authorization header wins over the derived one.
func (r *Resolver) NewRequest(ctx context.Context, p Profile, method string, body io.Reader) (*http.Request, error) {
	key, err := r.APIKey(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, p.FullURL(), body)
	if err != nil {
		return nil, err
	}

	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	for name, value := range r.Headers(p) {
		req.Header.Set(name, value)
	}

	return req, nil
}
