// Package authrequest persists in-flight OAuth2 authorization requests in an
// external key-value store, keyed by their CSRF state, so the login flow
// survives a stateless deployment: the instance handling the provider callback
// need not be the instance that started the flow.
package authrequest

// Request captures everything sent to an identity provider when a login flow
// starts. The State field is the generator-assigned anti-forgery token and is
// the only key under which the record is ever addressed.
type Request struct {
	AuthorizationURI string            `json:"authorization_uri"`
	ClientID         string            `json:"client_id"`
	RedirectURI      string            `json:"redirect_uri"`
	Scopes           []string          `json:"scopes"`
	State            string            `json:"state"`
	AdditionalParams map[string]string `json:"additional_parameters,omitempty"`

	// RequestURI is the fully assembled URL the browser is sent to.
	RequestURI string `json:"authorization_request_uri"`

	// Attributes carries application metadata riding along with the flow,
	// e.g. which client registration started it.
	Attributes map[string]string `json:"attributes,omitempty"`
}
