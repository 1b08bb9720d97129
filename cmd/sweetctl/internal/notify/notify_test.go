package notify

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

func newNotifier() (*Notifier, *bytes.Buffer) {
	pterm.DisableStyling()
	var buf bytes.Buffer
	return New(&buf), &buf
}

func TestNotifier_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message wins", &sdk.ServerError{StatusCode: 400, Message: "Out of stock"}, "Out of stock"},
		{"fallback without message", &sdk.ServerError{StatusCode: 500}, "Purchase failed"},
		{"validation", &sdk.ValidationError{Message: "Please fill in all fields"}, "Please fill in all fields"},
		{"wrapped auth", fmt.Errorf("ctx: %w", &sdk.AuthError{StatusCode: 401, Message: "Invalid credentials"}), "Invalid credentials"},
		{"timeout", &sdk.NetworkError{Op: "x", Err: context.DeadlineExceeded}, "Purchase failed (request timed out)"},
		{"unreachable", &sdk.NetworkError{Op: "x", Err: fmt.Errorf("connection refused")}, "Purchase failed (cannot reach server)"},
		{"redirect", &router.RedirectError{From: router.PathAdmin, To: router.PathLogin}, "/admin requires you to be signed in"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, buf := newNotifier()
			n.Error(tt.err, "Purchase failed")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNotifier_Toasts(t *testing.T) {
	n, buf := newNotifier()
	n.Success("Purchased %s", "Ladoo")
	n.Info("Loaded")
	n.Warning("Careful")
	n.Hint("run `sweetctl auth login`")

	out := buf.String()
	assert.Contains(t, out, "Purchased Ladoo")
	assert.Contains(t, out, "Loaded")
	assert.Contains(t, out, "Careful")
	assert.Contains(t, out, "Hint: run `sweetctl auth login`")
}

func TestNotifier_Observer(t *testing.T) {
	n, buf := newNotifier()
	n.Redirected(router.PathAdmin, router.PathDashboard)
	assert.Contains(t, buf.String(), "/admin requires the ADMIN role; showing /dashboard")
}
