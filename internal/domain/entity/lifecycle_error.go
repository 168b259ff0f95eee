package entity

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCatalog is returned when no accessory is eligible for purchase.
	ErrEmptyCatalog = errors.New("accessory catalog is empty")
	// ErrMintFailed is returned when a mint produced no event carrying an id.
	ErrMintFailed = errors.New("mint failed")
	// ErrPurchaseFailed is returned when an accessory purchase produced no usable result.
	ErrPurchaseFailed = errors.New("purchase failed")
	// ErrBreedFailed is returned when breeding produced no usable result.
	ErrBreedFailed = errors.New("breed failed")
	// ErrInsufficientBalance is matched by every *InsufficientBalanceError.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrRemoteCallFailed wraps transport and RPC level failures.
	ErrRemoteCallFailed = errors.New("remote call failed")
)

// InsufficientBalanceError describes a selection that does not cover the price.
type InsufficientBalanceError struct {
	Need decimal.Decimal
	Have decimal.Decimal
}

// NewInsufficientBalanceError is a constructor for InsufficientBalanceError.
func NewInsufficientBalanceError(need, have decimal.Decimal) *InsufficientBalanceError {
	return &InsufficientBalanceError{Need: need, Have: have}
}

// Error returns error description.
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %s, have %s", e.Need, e.Have)
}

// Is implements comparator method for [errors] package.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// RemoteCallError wraps a failed call to the chain client.
type RemoteCallError struct {
	Method string
	Err    error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("remote call %s failed: %v", e.Method, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// Is reports ErrRemoteCallFailed for every RemoteCallError.
func (e *RemoteCallError) Is(target error) bool {
	return target == ErrRemoteCallFailed
}

// StageError records which pipeline stage failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
