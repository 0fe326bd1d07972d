package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// Setting keys in the admin-mutable key-value store.
const (
	settingReferralBonus = "referralBonusAmount"
	settingLevelTable    = "levelSettings"
)

// SettingsUseCase reads and updates platform configuration. Values are read
// at the point of use so admin changes take effect without restarts.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// ReferralBonus returns the configured referral bonus, zero when unset.
func (u *SettingsUseCase) ReferralBonus(ctx context.Context) (float64, error) {
	var bonus float64
	if err := u.settings.Get(ctx, settingReferralBonus, &bonus); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return bonus, nil
}

// SetReferralBonus stores the referral bonus amount.
func (u *SettingsUseCase) SetReferralBonus(ctx context.Context, value float64) error {
	if value < 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.settings.Set(ctx, settingReferralBonus, value)
}

// TierTable returns the configured level brackets, or the defaults when
// none were set.
func (u *SettingsUseCase) TierTable(ctx context.Context) (model.TierTable, error) {
	var table model.TierTable
	if err := u.settings.Get(ctx, settingLevelTable, &table); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.DefaultTierTable(), nil
		}
		return nil, err
	}
	if len(table) == 0 {
		return model.DefaultTierTable(), nil
	}
	return table, nil
}

// SetTierTable stores level brackets after checking they form an ordered
// sequence of increasing minimums.
func (u *SettingsUseCase) SetTierTable(ctx context.Context, table model.TierTable) error {
	if len(table) == 0 {
		return domainErrors.ErrValidation
	}
	for i, tier := range table {
		if tier.Level <= 0 || tier.Min < 0 || tier.Bonus < 0 {
			return domainErrors.ErrValidation
		}
		if i > 0 && tier.Min <= table[i-1].Min {
			return domainErrors.ErrValidation
		}
	}
	return u.settings.Set(ctx, settingLevelTable, table)
}
