package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/repository"
	pkgAuth "github.com/giftpad/cardmarket/internal/pkg/auth"
)

// PinUseCase manages the transaction PIN gating withdrawals and email
// changes.
type PinUseCase struct {
	pins   repository.PinRepository
	hasher pkgAuth.PasswordHasher
}

// NewPinUseCase constructs PinUseCase.
func NewPinUseCase(pins repository.PinRepository, hasher pkgAuth.PasswordHasher) *PinUseCase {
	return &PinUseCase{pins: pins, hasher: hasher}
}

// validPin reports whether pin is exactly 4 decimal digits.
func validPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Status reports whether the user has a PIN set.
func (u *PinUseCase) Status(ctx context.Context, userID int64) (bool, error) {
	_, err := u.pins.GetHash(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Set validates the PIN format, hashes it and stores it.
func (u *PinUseCase) Set(ctx context.Context, userID int64, pin string) error {
	if !validPin(pin) {
		return domainErrors.ErrValidation
	}
	hash, err := u.hasher.Hash(pin)
	if err != nil {
		return err
	}
	return u.pins.Upsert(ctx, userID, hash)
}

// Change replaces the PIN after verifying the current one.
func (u *PinUseCase) Change(ctx context.Context, userID int64, currentPin, newPin string) error {
	if err := u.Verify(ctx, userID, currentPin); err != nil {
		return err
	}
	return u.Set(ctx, userID, newPin)
}

// Verify checks the supplied PIN against the stored hash.
func (u *PinUseCase) Verify(ctx context.Context, userID int64, pin string) error {
	hash, err := u.pins.GetHash(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrPinNotSet
		}
		return err
	}
	if pin == "" || u.hasher.Compare(hash, pin) != nil {
		return domainErrors.ErrInvalidPin
	}
	return nil
}
