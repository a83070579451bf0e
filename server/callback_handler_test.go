package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/likelion-sku/lionauth/authrequest"
	"github.com/likelion-sku/lionauth/kv"
)

func callback(t *testing.T, f *testFixture, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	f.server.ServeHTTP(w, r)
	return w
}

func TestCallbackHandler_UnknownStateRejected(t *testing.T) {
	f := newTestFixture(t)
	f.addAccount(testMemberAccount)

	// No authorization request was ever stored for this state (expired or replayed)
	w := callback(t, f, "/login/oauth2/code/google?state=bogus&code=auth-code")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, sessionCookie(t, w))
}

func TestCallbackHandler_MissingParameters(t *testing.T) {
	f := newTestFixture(t)

	for _, target := range []string{
		"/login/oauth2/code/google",
		"/login/oauth2/code/google?state=only-state",
		"/login/oauth2/code/google?code=only-code",
	} {
		w := callback(t, f, target)
		require.Equal(t, http.StatusBadRequest, w.Code, "target %q", target)
		require.Nil(t, sessionCookie(t, w), "target %q", target)
	}
}

func TestCallbackHandler_ProviderError(t *testing.T) {
	f := newTestFixture(t)

	w := callback(t, f, "/login/oauth2/code/google?error=access_denied&error_description=denied")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Nil(t, sessionCookie(t, w))
}

func TestCallbackHandler_RegistrationMismatchRejected(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	// A flow started against the google registration ...
	require.NoError(t, f.server.authRequests.Save(ctx, &authrequest.Request{
		ClientID:   testClientID,
		State:      "csrf-state",
		Attributes: map[string]string{"registration_id": "google"},
	}))

	// ... cannot be completed through another registration's callback
	w := callback(t, f, "/login/oauth2/code/kakao?state=csrf-state&code=auth-code")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, sessionCookie(t, w))

	// The request was still consumed: the state cannot be retried
	_, err := f.server.authRequests.Load(ctx, "csrf-state")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestCallbackHandler_StateIsSingleUse(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.server.authRequests.Save(ctx, &authrequest.Request{
		ClientID:   testClientID,
		State:      "csrf-state",
		Attributes: map[string]string{"registration_id": "google"},
	}))

	// First use consumes the record (the exchange then fails against the fake
	// endpoint, which is fine for this test) ...
	callback(t, f, "/login/oauth2/code/google?state=csrf-state&code=auth-code")

	// ... so a replay is rejected up front
	w := callback(t, f, "/login/oauth2/code/google?state=csrf-state&code=auth-code")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, sessionCookie(t, w))
}
