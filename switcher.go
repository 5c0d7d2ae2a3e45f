package flw

import (
	"context"
	"fmt"
	"sort"
)

// AccountResolver is called on every operation to pick the Flutterwave
// account to use, so configuration changes apply without a restart.
type AccountResolver func(ctx context.Context) (string, error)

// AccountSwitcher routes calls to one of several registered Clients, e.g. one
// per merchant or per environment.
type AccountSwitcher struct {
	clients  map[string]*Client
	resolver AccountResolver
}

// NewAccountSwitcher creates an AccountSwitcher
func NewAccountSwitcher(clients map[string]*Client, resolver AccountResolver) *AccountSwitcher {
	return &AccountSwitcher{clients: clients, resolver: resolver}
}

// Resolve returns the Client for the account the resolver picks
func (s *AccountSwitcher) Resolve(ctx context.Context) (*Client, error) {
	name, err := s.resolver(ctx)
	if err != nil {
		return nil, fmt.Errorf("flw: account resolver error: %w", err)
	}
	c, ok := s.clients[name]
	if !ok {
		return nil, fmt.Errorf("flw: account %q not registered: %w", name, ErrNotFound)
	}
	return c, nil
}

// ActiveAccountName resolves and returns the name of the current account
func (s *AccountSwitcher) ActiveAccountName(ctx context.Context) (string, error) {
	name, err := s.resolver(ctx)
	if err != nil {
		return "", fmt.Errorf("flw: account resolver error: %w", err)
	}
	if _, ok := s.clients[name]; !ok {
		return "", fmt.Errorf("flw: account %q not registered: %w", name, ErrNotFound)
	}
	return name, nil
}

// VerifyWebhook accepts the request if any registered account verifies it.
// Webhook handlers usually cannot tell which account a callback belongs to.
func (s *AccountSwitcher) VerifyWebhook(r InboundRequest) bool {
	_, ok := s.WebhookAccount(r)
	return ok
}

// WebhookAccount returns the name of the first account, in name order, whose
// secret hash matches the request
func (s *AccountSwitcher) WebhookAccount(r InboundRequest) (string, bool) {
	names := make([]string, 0, len(s.clients))
	for name := range s.clients {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if s.clients[name].VerifyWebhook(r) {
			return name, true
		}
	}
	return "", false
}

func (s *AccountSwitcher) InitializePayment(ctx context.Context, data Payload) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.InitializePayment(ctx, data)
}

func (s *AccountSwitcher) InitializeTokenizedCharge(ctx context.Context, data Payload) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.InitializeTokenizedCharge(ctx, data)
}

func (s *AccountSwitcher) InitializeBulkTokenizedCharge(ctx context.Context, data Payload) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.InitializeBulkTokenizedCharge(ctx, data)
}

func (s *AccountSwitcher) GetBulkTokenizedCharges(ctx context.Context, id string) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetBulkTokenizedCharges(ctx, id)
}

func (s *AccountSwitcher) GetBulkTokenizedChargeStatus(ctx context.Context, id string) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetBulkTokenizedChargeStatus(ctx, id)
}

func (s *AccountSwitcher) UpdateTokenDetails(ctx context.Context, token string, data Payload) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.UpdateTokenDetails(ctx, token, data)
}

func (s *AccountSwitcher) ValidateCharge(ctx context.Context, data Payload) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.ValidateCharge(ctx, data)
}

func (s *AccountSwitcher) VerifyTransaction(ctx context.Context, id string) (Response, error) {
	c, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return c.VerifyTransaction(ctx, id)
}
