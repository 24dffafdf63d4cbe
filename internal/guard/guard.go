package guard

import (
	"context"

	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/session"
	"github.com/EldarTem/inventoryTrack/pkg/roles"
)

// LoginPath is the screen unauthenticated users are sent to.
const LoginPath = "/auth/login"

// RouteMeta describes the navigation target as declared by the route table.
type RouteMeta struct {
	Path         string `json:"path" binding:"required"`
	RequiresAuth bool   `json:"requiresAuth"`
	Role         string `json:"role,omitempty"`
}

// Decision is either an allow or a redirect to another path.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

func redirect(path string) Decision {
	return Decision{RedirectTo: path}
}

// Guard decides, for every attempted navigation, whether it is permitted
// and where to redirect otherwise.
type Guard struct {
	sessions *session.Store
	log      *zap.Logger
}

func New(sessions *session.Store, log *zap.Logger) *Guard {
	return &Guard{sessions: sessions, log: log}
}

// Decide is a total function over the target metadata and the current
// identity. A route requiring authentication or a specific role redirects
// to the login screen when the requirement is not met; an authenticated
// user hitting the login screen itself is sent to the landing route of
// their role. An identity with a role outside the known set cannot be
// routed anywhere and is treated as an invalid session: the guard forces a
// logout and sends the user back to login.
func (g *Guard) Decide(ctx context.Context, target RouteMeta) Decision {
	identity, authenticated := g.sessions.Identity()

	if target.RequiresAuth && !authenticated {
		return redirect(LoginPath)
	}

	if target.Role != "" {
		if !authenticated || identity.Role.Code != target.Role {
			return redirect(LoginPath)
		}
	}

	if target.Path == LoginPath && authenticated {
		role, err := roles.Parse(identity.Role.Code)
		if err == nil {
			if landing, ok := role.LandingRoute(); ok {
				return redirect(landing)
			}
		}
		g.log.Warn("session carries unknown role, forcing logout",
			zap.String("role", identity.Role.Code))
		g.sessions.Logout(ctx)
		return redirect(LoginPath)
	}

	return Decision{Allow: true}
}
