package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
	pkgAuth "github.com/giftpad/cardmarket/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle, referral crediting at registration,
// and token management.
type AuthUseCase struct {
	users       repository.UserRepository
	invitations repository.InvitationRepository
	settings    *SettingsUseCase
	pins        *PinUseCase
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, invitations repository.InvitationRepository,
	settings *SettingsUseCase, pins *PinUseCase, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, invitations: invitations, settings: settings, pins: pins, hasher: hasher, tokens: strategy}
}

// Register creates a new user. A known invitation code links the new user
// to the inviter and credits the referral bonus to both sides; an unknown
// code is deliberately ignored and registration proceeds without linkage.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password, invitationCode string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || !strings.Contains(email, "@") || password == "" {
		return nil, domainErrors.ErrValidation
	}

	var inviterID *int64
	var bonus float64
	if code := strings.TrimSpace(invitationCode); code != "" {
		inv, err := u.invitations.GetByCode(ctx, code)
		switch {
		case err == nil:
			inviterID = &inv.UserID
			if bonus, err = u.settings.ReferralBonus(ctx); err != nil {
				return nil, err
			}
		case errors.Is(err, domainErrors.ErrNotFound):
			// unknown code: soft-fail, no referral linkage
		default:
			return nil, err
		}
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, username, email, hash, inviterID, bonus)
}

// Authenticate validates credentials and returns the user plus an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.users.TouchLastLogin(ctx, usr.ID); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// IssueToken creates an auth token for the user.
func (u *AuthUseCase) IssueToken(userID int64) (string, error) {
	return u.tokens.IssueToken(userID)
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// ChangeEmail updates the account email after PIN verification.
func (u *AuthUseCase) ChangeEmail(ctx context.Context, userID int64, pin, newEmail string) error {
	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" || !strings.Contains(newEmail, "@") {
		return domainErrors.ErrValidation
	}
	if err := u.pins.Verify(ctx, userID, pin); err != nil {
		return err
	}
	return u.users.UpdateEmail(ctx, userID, newEmail)
}
