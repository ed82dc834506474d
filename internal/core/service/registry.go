// Package service implements the core business logic.
package service

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/core/ports"
)

// GatewayRegistry maps gateway names to adapters. It is filled once at
// construction and only read afterwards, so concurrent lookups need no lock.
type GatewayRegistry struct {
	gateways map[string]ports.Gateway
}

// NewGatewayRegistry registers the given gateways under their lowercase
// names. A later gateway with the same name replaces an earlier one.
func NewGatewayRegistry(gateways ...ports.Gateway) *GatewayRegistry {
	r := &GatewayRegistry{gateways: make(map[string]ports.Gateway, len(gateways))}
	for _, gw := range gateways {
		if gw == nil {
			continue
		}
		r.gateways[normalize(gw.Name())] = gw
	}
	return r
}

// Resolve returns the adapter registered under name.
func (r *GatewayRegistry) Resolve(name string) (ports.Gateway, error) {
	gw, ok := r.gateways[normalize(name)]
	if !ok {
		return nil, domain.NewServiceError(
			errors.Wrapf(domain.ErrGatewayNotConfigured, "gateway %q", name),
			UnavailableMessage(name, r.Available()),
			"GATEWAY_NOT_CONFIGURED",
		)
	}
	return gw, nil
}

// IsAvailable reports whether name resolves. It never fails.
func (r *GatewayRegistry) IsAvailable(name string) bool {
	_, ok := r.gateways[normalize(name)]
	return ok
}

// Available lists registered gateway names in sorted order.
func (r *GatewayRegistry) Available() []string {
	names := lo.Keys(r.gateways)
	sort.Strings(names)
	return names
}

// UnavailableMessage is the client-facing text for an unknown gateway.
func UnavailableMessage(name string, available []string) string {
	return "Gateway '" + name + "' is not available. Available gateways: " + strings.Join(available, ", ")
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
