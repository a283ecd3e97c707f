package govista

import (
	"context"
	"fmt"
	"net/http"

	bk "github.com/govista/govista-web/booking"
)

type LoginResult struct {
	Token string
	User  bk.User
}

type loginEnvelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    bk.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the signed-in
// user's profile.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}

	var envelope loginEnvelope

	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, payload, &envelope); err != nil {
		return LoginResult{}, err
	}

	if !envelope.Success || envelope.Token == "" {
		return LoginResult{}, fmt.Errorf("%w: login response carried no token", ErrUnexpectedResponse)
	}

	return LoginResult{Token: envelope.Token, User: envelope.User}, nil
}
