package kampusapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userWire `json:"user"`
}

// Login exchanges staff credentials for a bearer token and the account's flags.
func (c *Client) Login(ctx context.Context, in ports.LoginInput) (domainauth.Identity, error) {
	var out tokenResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: strings.TrimSpace(in.Email), Password: in.Password},
		out:    &out,
	})
	if err != nil {
		// A 401 here means bad credentials, not an expired session.
		if apperrors.IsUnauthorized(err) {
			return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "E-posta veya şifre hatalı")
		}
		return domainauth.Identity{}, err
	}
	if out.AccessToken == "" {
		return domainauth.Identity{}, apperrors.Internal("login response did not include an access token")
	}
	if tt := strings.ToLower(out.TokenType); tt != "" && tt != "bearer" {
		return domainauth.Identity{}, apperrors.Internal("unsupported token type " + out.TokenType)
	}

	u := out.User.toModel()
	return domainauth.Identity{
		UserID:      strconv.FormatInt(u.ID, 10),
		Email:       u.Email,
		Token:       out.AccessToken,
		Permissions: u.Permissions(),
		Active:      u.IsActive,
	}, nil
}
