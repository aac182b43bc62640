package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskdesk/taskdesk/pkg/httpx"
	"github.com/taskdesk/taskdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestAuthnMiddleware(t *testing.T) {
	signer, err := jwtx.NewEphemeralSigner("test-key")
	require.NoError(t, err)
	verifier := jwtx.VerifierFor("test-issuer", signer)

	var gotUserID, gotRole string
	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = r.Context().Value(httpx.CtxKeyUserID).(string)
			gotRole, _ = r.Context().Value(httpx.CtxKeyRole).(string)
			w.WriteHeader(http.StatusOK)
		}),
		httpx.AuthnMiddleware(verifier),
	)

	send := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token injects identity", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("user-1", "admin", "test-issuer", time.Hour, time.Now())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		rec := send("Bearer " + token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", gotUserID)
		require.Equal(t, "admin", gotRole)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := send("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		rec := send("Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		rec := send("Bearer not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("user-1", "admin", "test-issuer", time.Hour, time.Now().Add(-2*time.Hour))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		rec := send("Bearer " + token)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}),
		mw("outer"), mw("inner"),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}
