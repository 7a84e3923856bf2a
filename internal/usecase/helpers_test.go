package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// unavailableStore fails every call, like an unreachable Redis.
type unavailableStore struct{}

var errUnavailable = errors.New("dial tcp: connection refused")

func (unavailableStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errUnavailable
}

func (unavailableStore) Set(context.Context, string, []byte, time.Duration) error {
	return errUnavailable
}

func (unavailableStore) Delete(context.Context, ...string) error {
	return errUnavailable
}

func (unavailableStore) Exists(context.Context, string) (bool, error) {
	return false, errUnavailable
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
