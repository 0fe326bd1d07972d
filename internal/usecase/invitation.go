package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// codeAttempts bounds retries when a generated code collides.
const codeAttempts = 5

var codeSpace = big.NewInt(100_000_000)

// InvitationUseCase manages referral codes.
type InvitationUseCase struct {
	invitations repository.InvitationRepository
	users       repository.UserRepository
}

// NewInvitationUseCase constructs InvitationUseCase.
func NewInvitationUseCase(invitations repository.InvitationRepository, users repository.UserRepository) *InvitationUseCase {
	return &InvitationUseCase{invitations: invitations, users: users}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate invitation code: %w", err)
	}
	return fmt.Sprintf("pad%08d", n), nil
}

// CodeFor returns the user's invitation code, generating one on first
// request. Collisions with existing codes are re-resolved with a fresh code.
func (u *InvitationUseCase) CodeFor(ctx context.Context, userID int64) (*model.InvitationCode, error) {
	inv, err := u.invitations.GetByUser(ctx, userID)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, err
		}
		inv, err := u.invitations.Create(ctx, userID, code)
		if err == nil {
			return inv, nil
		}
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
		// The conflict may be a concurrent generation for this same user.
		if existing, gerr := u.invitations.GetByUser(ctx, userID); gerr == nil {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("invitation code space exhausted after %d attempts: %w", codeAttempts, domainErrors.ErrAlreadyExists)
}

// Validate reports whether a code belongs to an existing user.
func (u *InvitationUseCase) Validate(ctx context.Context, code string) (bool, error) {
	_, err := u.invitations.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CodeForEmail resolves a user by email and returns their code, generating
// one if needed. Used by admins.
func (u *InvitationUseCase) CodeForEmail(ctx context.Context, email string) (*model.InvitationCode, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return u.CodeFor(ctx, usr.ID)
}
