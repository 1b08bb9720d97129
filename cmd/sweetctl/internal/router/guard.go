package router

import (
	"fmt"
	"strings"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// Path is a storefront location.
type Path string

const (
	PathLanding   Path = "/"
	PathLogin     Path = "/login"
	PathRegister  Path = "/register"
	PathDashboard Path = "/dashboard"
	PathAdmin     Path = "/admin"

	// PathExit ends navigation.
	PathExit Path = ""
)

// Decision is the guard's verdict. A zero Decision allows the navigation.
type Decision struct {
	RedirectTo Path
}

// Allow is the decision that lets navigation proceed.
var Allow = Decision{}

// RedirectTo sends navigation to target instead.
func RedirectTo(target Path) Decision {
	return Decision{RedirectTo: target}
}

// Allowed reports whether the requested path may be shown.
func (d Decision) Allowed() bool {
	return d.RedirectTo == PathExit
}

func (d Decision) String() string {
	if d.Allowed() {
		return "Allow"
	}
	return fmt.Sprintf("RedirectTo(%s)", d.RedirectTo)
}

// Normalize lowercases path, drops query/fragment and any trailing slash.
func Normalize(path Path) Path {
	p := string(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.ToLower(strings.TrimSpace(p))
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return Path(p)
}

// Guard decides whether state may view path. First matching rule wins:
//
//	/, /login, /register  signed in → /dashboard
//	/dashboard            signed out → /login
//	/admin                signed out → /login, role != ADMIN → /dashboard
//
// Paths outside the table are allowed. The role is the unverified claim and
// only steers navigation; the API enforces the real permission.
func Guard(path Path, state sdk.AuthorizationState) Decision {
	switch Normalize(path) {
	case PathLanding, PathLogin, PathRegister:
		if state.IsAuthenticated {
			return RedirectTo(PathDashboard)
		}
		return Allow
	case PathDashboard:
		if !state.IsAuthenticated {
			return RedirectTo(PathLogin)
		}
		return Allow
	case PathAdmin:
		if !state.IsAuthenticated {
			return RedirectTo(PathLogin)
		}
		if state.Role != sdk.RoleAdmin {
			return RedirectTo(PathDashboard)
		}
		return Allow
	default:
		return Allow
	}
}

// RedirectError reports that a routed command was turned away by the guard.
type RedirectError struct {
	From Path
	To   Path
}

func (e *RedirectError) Error() string {
	switch e.To {
	case PathLogin:
		return fmt.Sprintf("%s requires you to be signed in", e.From)
	case PathDashboard:
		if e.From == PathAdmin {
			return fmt.Sprintf("%s requires the %s role", e.From, sdk.RoleAdmin)
		}
		return fmt.Sprintf("%s is only available when signed out", e.From)
	default:
		return fmt.Sprintf("%s redirected to %s", e.From, e.To)
	}
}
