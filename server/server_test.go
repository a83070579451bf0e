package server

import (
	"net/http"
	"testing"

	"golang.org/x/oauth2"

	"github.com/likelion-sku/lionauth/accounts"
	"github.com/likelion-sku/lionauth/authrequest"
	"github.com/likelion-sku/lionauth/internal/config"
	"github.com/likelion-sku/lionauth/kv"
	"github.com/likelion-sku/lionauth/redirects"
	"github.com/likelion-sku/lionauth/token/refresh"
)

// testConfig overrides the env-var backed config with fixed test values.
type testConfig struct {
	config.EnvVars
	config.Cors
	config.OAuth
	config.Cookies
}

func (testConfig) GetEnv() string                   { return "TEST" }
func (testConfig) GetJWTSecret() []byte             { return []byte("test-secret-1") }
func (testConfig) GetCookieSecure() bool            { return false }
func (testConfig) GetCookieSameSite() http.SameSite { return http.SameSiteLaxMode }
func (testConfig) GetBaseURL() string               { return "http://localhost:8080" }

var _ config.Config = testConfig{}

const (
	testRegistrationID = "google"
	testClientID       = "client-1"
	testAuthURL        = "https://idp.example.com/auth"

	// Unroutable on purpose: tests that reach the token exchange should fail
	// it fast, without DNS lookups.
	testTokenURL = "http://127.0.0.1:1/token"
)

type testFixture struct {
	server   *Server
	store    *kv.MemoryStore
	accounts *accounts.InMemoryRepo
}

// newTestFixture wires a Server over in-memory backends with one client
// registration pre-resolved, so no discovery round trip happens in tests.
func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	store := kv.NewMemoryStore()
	accountRepo := accounts.NewInMemoryRepo()

	s := New(
		testConfig{},
		accountRepo,
		authrequest.NewStore(store, 0),
		redirects.NewStore(store, 0),
		refresh.NewManager(store, 0),
	)

	s.registrationOidc[testRegistrationID] = OidcConfig{
		OAuth2Config: &oauth2.Config{
			ClientID: testClientID,
			Endpoint: oauth2.Endpoint{
				AuthURL:  testAuthURL,
				TokenURL: testTokenURL,
			},
			RedirectURL: "http://localhost:8080/login/oauth2/code/" + testRegistrationID,
			Scopes:      []string{"openid", "profile", "email"},
		},
	}

	return &testFixture{server: s, store: store, accounts: accountRepo}
}

func (f *testFixture) addAccount(account accounts.Account) {
	f.accounts.Upsert(account)
}

var (
	testAdminAccount = accounts.Account{
		Email: "admin@sku-sku.com",
		Name:  "Kim Junha",
		Track: accounts.TrackBackend,
		Role:  accounts.RoleAdmin,
	}
	testMemberAccount = accounts.Account{
		Email: "member@sku-sku.com",
		Name:  "Lee Subin",
		Track: accounts.TrackFrontend,
		Role:  accounts.RoleMember,
	}
)
