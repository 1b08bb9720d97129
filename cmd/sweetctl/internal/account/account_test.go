package account

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk/sdktest"
)

func newService(t *testing.T) (*Service, *sdk.MemoryStore, *sdktest.Server) {
	t.Helper()
	server := sdktest.NewServer(t)
	store := sdk.NewMemoryStore("")
	return NewService(sdk.NewClient(server.URL(), store), store, nil), store, server
}

func TestService_LoginStoresCredential(t *testing.T) {
	svc, store, server := newService(t)
	server.AddUser("Root", "root@example.com", "secret", sdk.RoleAdmin)

	state, err := svc.Login(context.Background(), forms.Login{Email: "root@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, sdk.AuthorizationState{IsAuthenticated: true, Role: sdk.RoleAdmin}, state)

	_, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, state, svc.State())
}

func TestService_LoginBadCredentials(t *testing.T) {
	svc, store, server := newService(t)
	server.AddUser("Root", "root@example.com", "secret", sdk.RoleAdmin)

	_, err := svc.Login(context.Background(), forms.Login{Email: "root@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, sdk.IsAuthError(err))
	assert.Equal(t, "Invalid credentials", sdk.UserMessage(err, "Login failed"))

	_, ok := store.Get()
	assert.False(t, ok)
}

func TestService_LoginValidationShortCircuits(t *testing.T) {
	svc, _, server := newService(t)
	_, err := svc.Login(context.Background(), forms.Login{Email: "root@example.com"})
	assert.Equal(t, "Please fill in all fields", sdk.UserMessage(err, "Login failed"))
	assert.Empty(t, server.Requests())
}

func TestService_RegisterThenAutoLogin(t *testing.T) {
	svc, _, server := newService(t)

	state, err := svc.Register(context.Background(), forms.Register{
		Name: "Asha", Email: "asha@example.com", Password: "secret", ConfirmPassword: "secret",
	})
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, sdk.RoleUser, state.Role)

	reqs := server.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/api/auth/register", reqs[0].Path)
	assert.Equal(t, "/api/auth/login", reqs[1].Path)
}

func TestService_RegisterConflict(t *testing.T) {
	svc, store, server := newService(t)
	server.AddUser("Asha", "asha@example.com", "secret", sdk.RoleUser)

	_, err := svc.Register(context.Background(), forms.Register{
		Name: "Asha", Email: "asha@example.com", Password: "secret", ConfirmPassword: "secret",
	})
	var serverErr *sdk.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusConflict, serverErr.StatusCode)
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestService_Logout(t *testing.T) {
	svc, store, _ := newService(t)
	require.NoError(t, store.Set("h.eyJyb2xlIjoiVVNFUiJ9.s"))
	require.True(t, svc.State().IsAuthenticated)

	require.NoError(t, svc.Logout())
	assert.Equal(t, sdk.AuthorizationState{IsAuthenticated: false, Role: ""}, svc.State())
}
