package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
)

type transport struct {
	store *Store
	base  http.RoundTripper
}

// Transport wraps base so that requests carry the session's access token and
// an expired token is refreshed and the request retried once. A nil base
// means http.DefaultTransport.
//
// Use it only for authenticated API calls; the store's AuthAPI must keep
// using a plain transport.
func (s *Store) Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &transport{store: s, base: base}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	snap := t.store.snapshot()

	body, err := replayableBody(req)
	if err != nil {
		return nil, err
	}

	first, err := authorized(req, body, accessOf(snap))
	if err != nil {
		return nil, err
	}
	resp, err := t.base.RoundTrip(first)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	if snap.tokens == nil || snap.tokens.Refresh == "" {
		t.store.forceLogoutIfCurrent(ctx, snap.gen, ReasonNotAuthenticated)
		return resp, nil
	}

	access, err := t.store.refresh(ctx, snap)
	if err != nil {
		if !errors.Is(err, errSessionChanged) {
			t.store.log.Warn(ctx, "token refresh failed", "error", err)
			t.store.forceLogoutIfCurrent(ctx, snap.gen, ReasonRefreshFailed)
		}
		return resp, nil
	}

	retry, err := authorized(req, body, access)
	if err != nil {
		return resp, nil
	}
	drain(resp)
	return t.base.RoundTrip(retry)
}

func accessOf(snap snapshot) string {
	if snap.tokens == nil {
		return ""
	}
	return snap.tokens.Access
}

// replayableBody returns a constructor for fresh copies of req's body. Bodies
// without GetBody are buffered once.
func replayableBody(req *http.Request) (func() (io.ReadCloser, error), error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	if req.GetBody != nil {
		_ = req.Body.Close()
		return req.GetBody, nil
	}

	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("buffer request body: %w", err)
	}
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}, nil
}

// authorized clones req with a fresh body and the bearer header for access.
func authorized(req *http.Request, body func() (io.ReadCloser, error), access string) (*http.Request, error) {
	out := req.Clone(req.Context())
	if body != nil {
		rc, err := body()
		if err != nil {
			return nil, fmt.Errorf("replay request body: %w", err)
		}
		out.Body = rc
		out.GetBody = body
	}
	if access != "" {
		out.Header.Set(common.AuthorizationHeader, common.BearerPrefix+access)
	}
	return out, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	_ = resp.Body.Close()
}
