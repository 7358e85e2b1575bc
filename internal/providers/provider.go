package providers

import (
	"context"

	"github.com/faredeck/faredeck/internal/models"
)

// Provider is a partner adapter producing offers for a single vertical.
type Provider interface {
	Name() string
	Vertical() models.Vertical
	Search(ctx context.Context, req models.SearchRequest) ([]models.Offer, error)
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
