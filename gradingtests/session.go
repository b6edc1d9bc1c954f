package gradingtests

import (
	"fmt"

	"github.com/launchdarkly/grading-contract-tests/framework"
	"github.com/launchdarkly/grading-contract-tests/servicedef"

	"github.com/pkg/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Identity is the user the backend says we are logged in as.
type Identity struct {
	ID   ldvalue.OptionalInt
	Role string
}

// Session tracks which fixture account is currently logged in. A successful Login replaces
// the current identity; a failed one leaves it as it was.
//
// There is one Session per test run, shared by all tests in the order they run.
type Session struct {
	client  *backendClient
	current *Identity
}

func NewSession(harness *framework.TestHarness) *Session {
	return &Session{client: &backendClient{harness: harness}}
}

// Current returns the identity from the last successful login, or nil.
func (s *Session) Current() *Identity {
	return s.current
}

// Login authenticates as the role's fixture account. It returns an error, without changing
// the current identity, if the request fails or the backend does not answer with status 200.
func (s *Session) Login(role Role, logger framework.Logger) (Identity, error) {
	resp, err := s.exchangeCredentials(role.Credentials(), logger)
	if err != nil {
		return Identity{}, err
	}
	if resp.status != 200 {
		return Identity{}, fmt.Errorf("login as %s returned status %d", role.Credentials().Username, resp.status)
	}
	var data servicedef.LoginResponse
	if err := resp.decodeJSON(&data); err != nil {
		return Identity{}, errors.Wrap(err, "login")
	}
	if data.Success.IsBool() && !data.Success.BoolValue() {
		return Identity{}, fmt.Errorf("login as %s was rejected: %s", role.Credentials().Username, data.Error)
	}
	id, wireRole := data.Identity()
	identity := Identity{ID: id, Role: wireRole}
	s.current = &identity
	return identity, nil
}

// exchangeCredentials posts a username and password to the login endpoint without
// interpreting the result.
func (s *Session) exchangeCredentials(creds Credentials, logger framework.Logger) (backendResponse, error) {
	return s.client.do(backendRequest{
		method:   "POST",
		path:     servicedef.PathLogin,
		jsonBody: servicedef.LoginParams{Username: creds.Username, Password: creds.Password},
		timeout:  requestTimeout,
	}, logger)
}
