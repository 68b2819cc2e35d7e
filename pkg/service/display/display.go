// Package display resolves the currency a user's monetary values are
// rendered in. Every converting read path goes through the same
// resolution so the fallback behaves identically everywhere.
package display

import (
	"context"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/repository"
)

// Info is a resolved display currency.
type Info struct {
	Code           string
	Symbol         string
	SymbolPosition domain.SymbolPosition
}

// Fallback is the display currency used when a user has none
// configured or the configured one cannot be resolved.
func Fallback() Info {
	return Info{
		Code:           domain.FallbackISOCode,
		Symbol:         domain.FallbackSymbol,
		SymbolPosition: domain.FallbackSymbolPosition,
	}
}

// ForUser resolves the display currency for a user. A nil user, an
// unset currency or a dangling reference all degrade to the fallback.
func ForUser(ctx context.Context, currencies repository.CurrencyRepository, user *domain.User) Info {
	if user == nil || user.CurrencyID == nil {
		return Fallback()
	}
	return ForID(ctx, currencies, *user.CurrencyID)
}

// ForID resolves a currency row into display info, degrading to the
// fallback when the row is missing. A row without a symbol renders
// with its ISO code instead.
func ForID(ctx context.Context, currencies repository.CurrencyRepository, id uint) Info {
	cur, err := currencies.Get(ctx, id)
	if err != nil {
		return Fallback()
	}
	symbol := cur.Symbol
	if symbol == "" {
		symbol = cur.ISOCode
	}
	return Info{
		Code:           cur.ISOCode,
		Symbol:         symbol,
		SymbolPosition: cur.SymbolPosition,
	}
}

// ISOForID resolves an optional currency reference to its ISO code.
// The second return is false when the reference is nil or dangling,
// meaning the amount carries no known source currency.
func ISOForID(ctx context.Context, currencies repository.CurrencyRepository, id *uint) (string, bool) {
	if id == nil {
		return "", false
	}
	cur, err := currencies.Get(ctx, *id)
	if err != nil {
		return "", false
	}
	return cur.ISOCode, true
}
