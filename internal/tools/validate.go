package tools

import (
	"context"

	"careermcp/internal/config"
	"careermcp/internal/gateway"
)

// newValidate builds the identity tool the connecting agent calls to
// confirm the bearer token: it simply returns the configured phone number
// in {country_code}{number} form. Authentication itself happens in the
// gateway pipeline like every other tool.
func newValidate(cfg *config.Config) gateway.Descriptor {
	return gateway.Descriptor{
		Name:        "validate",
		Description: "Validate the bearer token and return the owner's phone number",
		Handler: func(ctx context.Context, args gateway.Args) (string, error) {
			return cfg.PhoneNumber, nil
		},
	}
}
