package client

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/auth"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// Provider yields the session store and SDK client shared by all commands.
// Both are built on first use, once.
type Provider struct {
	apiURL string
	home   string
	logger *zap.Logger
	opts   []sdk.ClientOption

	storeOnce sync.Once
	store     sdk.SessionStore
	storeErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error
}

// NewProvider constructs a Provider for the API at apiURL, keeping credentials under home.
func NewProvider(apiURL, home string, logger *zap.Logger, opts ...sdk.ClientOption) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{apiURL: apiURL, home: home, logger: logger, opts: opts}
}

// SetSessionStore replaces the file-backed store (for testing).
// It must be called before the first SessionStore or SDKClient call.
func (p *Provider) SetSessionStore(store sdk.SessionStore) {
	p.storeOnce.Do(func() {
		p.store = store
	})
}

// APIURL returns the API base address the provider targets.
func (p *Provider) APIURL() string {
	return p.apiURL
}

// SessionStore returns the credential store, creating the file store on first use.
func (p *Provider) SessionStore() (sdk.SessionStore, error) {
	p.storeOnce.Do(func() {
		store, err := auth.NewFileStore(p.home, p.logger)
		if err != nil {
			p.storeErr = err
			return
		}
		p.store = store
	})
	if p.storeErr != nil {
		return nil, p.storeErr
	}
	return p.store, nil
}

// SDKClient returns an SDK client that reads its bearer token from SessionStore.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		store, err := p.SessionStore()
		if err != nil {
			p.sdkErr = err
			return
		}
		opts := append([]sdk.ClientOption{sdk.WithLogger(p.logger)}, p.opts...)
		p.sdkClient = sdk.NewClient(p.apiURL, store, opts...)
	})
	if p.sdkErr != nil {
		return nil, p.sdkErr
	}
	return p.sdkClient, nil
}

// State derives the authorization state from the current store contents.
func (p *Provider) State() (sdk.AuthorizationState, error) {
	store, err := p.SessionStore()
	if err != nil {
		return sdk.AuthorizationState{}, err
	}
	return sdk.DeriveAuthorization(store), nil
}
