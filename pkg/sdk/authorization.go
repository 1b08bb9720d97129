package sdk

// Roles issued by the SweetShelf API.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// AuthorizationState is what the client believes about the current session.
// Role is empty when the credential is absent or its claims cannot be decoded.
type AuthorizationState struct {
	IsAuthenticated bool
	Role            string
}

// IsAdmin reports whether the advisory role is ADMIN.
func (s AuthorizationState) IsAdmin() bool {
	return s.IsAuthenticated && s.Role == RoleAdmin
}

// DeriveAuthorization reads the store and decodes the credential fresh on every call.
// Authentication is credential presence only; expiry and signature are not checked.
func DeriveAuthorization(store SessionStore) AuthorizationState {
	if store == nil {
		return AuthorizationState{}
	}
	token, ok := store.Get()
	if !ok {
		return AuthorizationState{}
	}

	state := AuthorizationState{IsAuthenticated: true}
	if claims := DecodeClaims(token); claims != nil {
		state.Role = claims.Role
	}
	return state
}
