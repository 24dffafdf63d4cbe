package api

import (
	"context"
	"fmt"

	"github.com/EldarTem/inventoryTrack/internal/session"
	"github.com/EldarTem/inventoryTrack/pkg/models"
	"github.com/EldarTem/inventoryTrack/pkg/roles"
)

// AuthClient implements session.Authenticator against the warehouse API.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// loginResponse carries the role as a bare string; Token is empty on
// backends that do not issue one.
type loginResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Login exchanges credentials for an identity. Any rejection or transport
// failure surfaces as *session.AuthenticationError; the caller's state is
// unaffected.
func (a *AuthClient) Login(ctx context.Context, login, password string) (models.Identity, string, error) {
	var resp loginResponse
	err := a.client.PostJSON(ctx, "/users/login", loginRequest{Login: login, Password: password}, &resp, nil)
	if err != nil {
		return models.Identity{}, "", &session.AuthenticationError{Message: err.Error()}
	}
	if resp.ID == "" || resp.Login == "" {
		return models.Identity{}, "", &session.AuthenticationError{
			Message: fmt.Sprintf("login response is missing required fields for %q", login),
		}
	}

	identity := models.Identity{
		ID:    resp.ID,
		Login: resp.Login,
		Role:  normalizeRole(resp.Role),
	}
	return identity, resp.Token, nil
}

// Logout notifies the backend that the session ended. Callers treat the
// result as best-effort; legacy deployments have no logout endpoint at all.
func (a *AuthClient) Logout(ctx context.Context, token string) error {
	var headers map[string]string
	if token != "" {
		headers = map[string]string{"Authorization": "Bearer " + token}
	}
	return a.client.PostJSON(ctx, "/users/logout", struct{}{}, nil, headers)
}

// normalizeRole maps the backend's role string onto the closed role set,
// keeping the raw code as a fallback for roles the guard will later reject.
func normalizeRole(code string) models.Role {
	role, err := roles.Parse(code)
	if err != nil {
		return models.Role{Code: code, DisplayValue: code}
	}
	return models.Role{Code: role.String(), DisplayValue: role.DisplayValue()}
}
