package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

const pgUniqueViolation = "23505"

// pgxPool is the subset of pgxpool.Pool the storage needs. Declared as an
// interface so tests can substitute a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct{ storage *Storage }
type ledgerRepository struct{ storage *Storage }
type sellRequestRepository struct{ storage *Storage }
type withdrawalRepository struct{ storage *Storage }
type bankAccountRepository struct{ storage *Storage }
type invitationRepository struct{ storage *Storage }
type pinRepository struct{ storage *Storage }
type notificationRepository struct{ storage *Storage }
type transactionRepository struct{ storage *Storage }
type settingsRepository struct{ storage *Storage }

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository { return &userRepository{storage: s} }

func (s *Storage) Ledger() repository.LedgerRepository { return &ledgerRepository{storage: s} }

func (s *Storage) SellRequests() repository.SellRequestRepository {
	return &sellRequestRepository{storage: s}
}

func (s *Storage) Withdrawals() repository.WithdrawalRepository {
	return &withdrawalRepository{storage: s}
}

func (s *Storage) BankAccounts() repository.BankAccountRepository {
	return &bankAccountRepository{storage: s}
}

func (s *Storage) Invitations() repository.InvitationRepository {
	return &invitationRepository{storage: s}
}

func (s *Storage) Pins() repository.PinRepository { return &pinRepository{storage: s} }

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) Settings() repository.SettingsRepository { return &settingsRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            balance DOUBLE PRECISION NOT NULL DEFAULT 0,
            total_sold DOUBLE PRECISION NOT NULL DEFAULT 0,
            level INTEGER NOT NULL DEFAULT 1,
            level_bonus DOUBLE PRECISION NOT NULL DEFAULT 0,
            referral_bonus DOUBLE PRECISION NOT NULL DEFAULT 0,
            invited_by BIGINT REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_login TIMESTAMPTZ
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users (LOWER(username))`,
		`CREATE TABLE IF NOT EXISTS pins (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            pin_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS sell_requests (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            gift_card_code TEXT NOT NULL,
            currency TEXT NOT NULL,
            face_value DOUBLE PRECISION NOT NULL,
            rate DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            code TEXT NOT NULL DEFAULT '',
            card_type TEXT NOT NULL,
            images TEXT[] NOT NULL DEFAULT '{}',
            status TEXT NOT NULL DEFAULT 'pending',
            marked BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS bank_accounts (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            bank_name TEXT NOT NULL,
            account_number TEXT NOT NULL,
            account_name TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS withdrawals (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            bank_account_id BIGINT NOT NULL REFERENCES bank_accounts(id),
            amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            admin_comment TEXT NOT NULL DEFAULT '',
            marked BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            completed_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS invitation_codes (
            id SERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            code TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id SERIAL PRIMARY KEY,
            user_id BIGINT REFERENCES users(id),
            title TEXT NOT NULL,
            message TEXT NOT NULL,
            kind TEXT NOT NULL,
            link TEXT NOT NULL DEFAULT '',
            read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS transactions (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            details TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'completed',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            key TEXT PRIMARY KEY,
            value JSONB NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_sell_requests_user ON sell_requests(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_withdrawals_user ON withdrawals(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- balance mutation helpers ---

// recordTransactionTx writes the ledger event that caused a balance change.
func (s *Storage) recordTransactionTx(ctx context.Context, tx pgx.Tx, userID int64, cause model.TransactionType, amount float64, details string) error {
	const query = `INSERT INTO transactions (user_id, type, amount, details) VALUES ($1, $2, $3, $4)`
	_, err := tx.Exec(ctx, query, userID, cause, amount, details)
	return err
}

// creditUserTx increases the user's balance and records one ledger event.
func (s *Storage) creditUserTx(ctx context.Context, tx pgx.Tx, userID int64, amount float64, cause model.TransactionType, details string) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET balance = balance + $2 WHERE id = $1`, userID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return s.recordTransactionTx(ctx, tx, userID, cause, amount, details)
}

// debitUserTx decreases the user's balance after checking it under a row
// lock, so concurrent debits of the same user serialize and the balance
// never goes negative.
func (s *Storage) debitUserTx(ctx context.Context, tx pgx.Tx, userID int64, amount float64, cause model.TransactionType, details string) error {
	var balance float64
	err := tx.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	if balance < amount {
		return domainErrors.ErrInsufficientBalance
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET balance = balance - $2 WHERE id = $1`, userID, amount); err != nil {
		return err
	}
	return s.recordTransactionTx(ctx, tx, userID, cause, amount, details)
}

// --- UserRepository implementation ---

const userColumns = `id, username, email, password_hash, is_admin, balance, total_sold, level, level_bonus, referral_bonus, invited_by, created_at, last_login`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.Balance, &u.TotalSold,
		&u.Level, &u.LevelBonus, &u.ReferralBonus, &u.InvitedBy, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string, inviterID *int64, bonus float64) (*model.User, error) {
	var seed float64
	if inviterID != nil {
		seed = bonus
	}

	u := model.User{
		Username:      username,
		Email:         email,
		PasswordHash:  passwordHash,
		Balance:       seed,
		ReferralBonus: seed,
		Level:         1,
		InvitedBy:     inviterID,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO users (username, email, password_hash, balance, referral_bonus, invited_by)
                        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
		err := tx.QueryRow(ctx, insert, username, email, passwordHash, seed, seed, inviterID).Scan(&u.ID, &u.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		if seed > 0 {
			if err := r.storage.recordTransactionTx(ctx, tx, u.ID, model.TransactionReferralBonus, seed, "signup referral bonus"); err != nil {
				return err
			}
			if err := r.storage.creditUserTx(ctx, tx, *inviterID, bonus, model.TransactionReferralBonus,
				fmt.Sprintf("referral signup by user %d", u.ID)); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE users SET referral_bonus = referral_bonus + $2 WHERE id = $1`, *inviterID, bonus); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE users SET email = $2 WHERE id = $1`, id, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	return err
}

// --- LedgerRepository implementation ---

func (r *ledgerRepository) Credit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.creditUserTx(ctx, tx, userID, amount, cause, details)
	})
}

func (r *ledgerRepository) Debit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.debitUserTx(ctx, tx, userID, amount, cause, details)
	})
}

// --- SellRequestRepository implementation ---

const sellRequestColumns = `id, user_id, gift_card_code, currency, face_value, rate, total, code, card_type, images, status, marked, created_at`

func scanSellRequest(row pgx.Row) (*model.SellRequest, error) {
	var req model.SellRequest
	err := row.Scan(&req.ID, &req.UserID, &req.GiftCardCode, &req.Currency, &req.FaceValue, &req.Rate,
		&req.Total, &req.Code, &req.CardType, &req.Images, &req.Status, &req.Marked, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *sellRequestRepository) Create(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	const query = `INSERT INTO sell_requests (user_id, gift_card_code, currency, face_value, rate, total, code, card_type, images)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, status, marked, created_at`
	out := *req
	if out.Images == nil {
		out.Images = []string{}
	}
	err := r.storage.pool.QueryRow(ctx, query, req.UserID, req.GiftCardCode, req.Currency, req.FaceValue,
		req.Rate, req.Total, req.Code, req.CardType, out.Images).
		Scan(&out.ID, &out.Status, &out.Marked, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sellRequestRepository) GetByID(ctx context.Context, id int64) (*model.SellRequest, error) {
	query := `SELECT ` + sellRequestColumns + ` FROM sell_requests WHERE id = $1`
	return scanSellRequest(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *sellRequestRepository) listSellRequests(ctx context.Context, query string, args ...any) ([]model.SellRequest, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SellRequest
	for rows.Next() {
		req, err := scanSellRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *sellRequestRepository) ListByUser(ctx context.Context, userID int64) ([]model.SellRequest, error) {
	query := `SELECT ` + sellRequestColumns + ` FROM sell_requests WHERE user_id = $1 ORDER BY created_at DESC`
	return r.listSellRequests(ctx, query, userID)
}

func (r *sellRequestRepository) ListAll(ctx context.Context) ([]model.SellRequest, error) {
	query := `SELECT ` + sellRequestColumns + ` FROM sell_requests ORDER BY created_at DESC`
	return r.listSellRequests(ctx, query)
}

func (r *sellRequestRepository) ListUnmarked(ctx context.Context) ([]model.SellRequest, error) {
	query := `SELECT ` + sellRequestColumns + ` FROM sell_requests WHERE marked = FALSE ORDER BY created_at DESC`
	return r.listSellRequests(ctx, query)
}

func (r *sellRequestRepository) UpdateStatus(ctx context.Context, id int64, status model.SellRequestStatus, tiers model.TierTable) (*model.SellRequest, error) {
	var out *model.SellRequest
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		lockQuery := `SELECT ` + sellRequestColumns + ` FROM sell_requests WHERE id = $1 FOR UPDATE`
		current, err := scanSellRequest(tx.QueryRow(ctx, lockQuery, id))
		if err != nil {
			return err
		}

		// Re-applying the current status is a no-op, so a repeated
		// completion never credits twice.
		if current.Status == status {
			out = current
			return nil
		}
		if current.Status.Terminal() {
			return domainErrors.ErrInvalidState
		}

		if _, err := tx.Exec(ctx, `UPDATE sell_requests SET status = $2 WHERE id = $1`, id, status); err != nil {
			return err
		}
		current.Status = status
		out = current

		if status != model.SellStatusCompleted {
			return nil
		}

		var totalSold float64
		err = tx.QueryRow(ctx, `SELECT total_sold FROM users WHERE id = $1 FOR UPDATE`, current.UserID).Scan(&totalSold)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		totalSold += current.Total
		tier := tiers.Resolve(totalSold)
		_, err = tx.Exec(ctx, `UPDATE users SET total_sold = $2, level = $3, level_bonus = $4 WHERE id = $1`,
			current.UserID, totalSold, tier.Level, tier.Bonus)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sellRequestRepository) SetMarked(ctx context.Context, id int64) (*model.SellRequest, error) {
	query := `UPDATE sell_requests SET marked = TRUE WHERE id = $1 RETURNING ` + sellRequestColumns
	return scanSellRequest(r.storage.pool.QueryRow(ctx, query, id))
}

// --- WithdrawalRepository implementation ---

const withdrawalColumns = `id, user_id, bank_account_id, amount, status, admin_comment, marked, created_at, completed_at`

func scanWithdrawal(row pgx.Row) (*model.Withdrawal, error) {
	var w model.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.BankAccountID, &w.Amount, &w.Status, &w.AdminComment,
		&w.Marked, &w.CreatedAt, &w.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepository) Create(ctx context.Context, userID, bankAccountID int64, amount float64) (*model.Withdrawal, error) {
	w := model.Withdrawal{
		UserID:        userID,
		BankAccountID: bankAccountID,
		Amount:        amount,
		Status:        model.WithdrawalStatusPending,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var accountID int64
		err := tx.QueryRow(ctx, `SELECT id FROM bank_accounts WHERE id = $1 AND user_id = $2`, bankAccountID, userID).Scan(&accountID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if err := r.storage.debitUserTx(ctx, tx, userID, amount, model.TransactionWithdrawal,
			fmt.Sprintf("withdrawal to bank account %d", bankAccountID)); err != nil {
			return err
		}

		const insert = `INSERT INTO withdrawals (user_id, bank_account_id, amount) VALUES ($1, $2, $3) RETURNING id, created_at`
		return tx.QueryRow(ctx, insert, userID, bankAccountID, amount).Scan(&w.ID, &w.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepository) GetByID(ctx context.Context, id int64) (*model.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`
	return scanWithdrawal(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *withdrawalRepository) listWithdrawals(ctx context.Context, query string, args ...any) ([]model.Withdrawal, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`
	return r.listWithdrawals(ctx, query, userID)
}

func (r *withdrawalRepository) ListAll(ctx context.Context) ([]model.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC`
	return r.listWithdrawals(ctx, query)
}

func (r *withdrawalRepository) UpdateStatus(ctx context.Context, id int64, status model.WithdrawalStatus, adminComment *string) (*model.Withdrawal, bool, error) {
	var out *model.Withdrawal
	var changed bool
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		lockQuery := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
		current, err := scanWithdrawal(tx.QueryRow(ctx, lockQuery, id))
		if err != nil {
			return err
		}

		if current.Status == status {
			out = current
			return nil
		}
		if current.Status != model.WithdrawalStatusPending {
			return domainErrors.ErrInvalidState
		}

		comment := current.AdminComment
		if adminComment != nil {
			comment = *adminComment
		}

		var completedAt *time.Time
		if status == model.WithdrawalStatusCompleted {
			now := time.Now()
			completedAt = &now
		}

		if _, err := tx.Exec(ctx, `UPDATE withdrawals SET status = $2, admin_comment = $3, completed_at = $4 WHERE id = $1`,
			id, status, comment, completedAt); err != nil {
			return err
		}

		// A failed withdrawal restores the funds debited at creation.
		if status == model.WithdrawalStatusFailed {
			if err := r.storage.creditUserTx(ctx, tx, current.UserID, current.Amount, model.TransactionWithdrawalRefund,
				fmt.Sprintf("refund for failed withdrawal %d", id)); err != nil {
				return err
			}
		}

		current.Status = status
		current.AdminComment = comment
		current.CompletedAt = completedAt
		out = current
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

func (r *withdrawalRepository) SetMarked(ctx context.Context, id int64) (*model.Withdrawal, error) {
	query := `UPDATE withdrawals SET marked = TRUE WHERE id = $1 RETURNING ` + withdrawalColumns
	return scanWithdrawal(r.storage.pool.QueryRow(ctx, query, id))
}

// --- BankAccountRepository implementation ---

const bankAccountColumns = `id, user_id, bank_name, account_number, account_name, created_at`

func scanBankAccount(row pgx.Row) (*model.BankAccount, error) {
	var a model.BankAccount
	err := row.Scan(&a.ID, &a.UserID, &a.BankName, &a.AccountNumber, &a.AccountName, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *bankAccountRepository) Create(ctx context.Context, userID int64, bankName, accountNumber, accountName string) (*model.BankAccount, error) {
	const query = `INSERT INTO bank_accounts (user_id, bank_name, account_number, account_name)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	a := model.BankAccount{UserID: userID, BankName: bankName, AccountNumber: accountNumber, AccountName: accountName}
	if err := r.storage.pool.QueryRow(ctx, query, userID, bankName, accountNumber, accountName).Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *bankAccountRepository) GetForUser(ctx context.Context, id, userID int64) (*model.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1 AND user_id = $2`
	return scanBankAccount(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *bankAccountRepository) ListByUser(ctx context.Context, userID int64) ([]model.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BankAccount
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bankAccountRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bank_accounts WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *bankAccountRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- InvitationRepository implementation ---

const invitationColumns = `id, user_id, code, created_at`

func scanInvitation(row pgx.Row) (*model.InvitationCode, error) {
	var inv model.InvitationCode
	err := row.Scan(&inv.ID, &inv.UserID, &inv.Code, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) Create(ctx context.Context, userID int64, code string) (*model.InvitationCode, error) {
	const query = `INSERT INTO invitation_codes (user_id, code) VALUES ($1, $2) RETURNING id, created_at`
	inv := model.InvitationCode{UserID: userID, Code: code}
	err := r.storage.pool.QueryRow(ctx, query, userID, code).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) GetByUser(ctx context.Context, userID int64) (*model.InvitationCode, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitation_codes WHERE user_id = $1`
	return scanInvitation(r.storage.pool.QueryRow(ctx, query, userID))
}

func (r *invitationRepository) GetByCode(ctx context.Context, code string) (*model.InvitationCode, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitation_codes WHERE code = $1`
	return scanInvitation(r.storage.pool.QueryRow(ctx, query, code))
}

// --- PinRepository implementation ---

func (r *pinRepository) GetHash(ctx context.Context, userID int64) (string, error) {
	var hash string
	err := r.storage.pool.QueryRow(ctx, `SELECT pin_hash FROM pins WHERE user_id = $1`, userID).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	return hash, nil
}

func (r *pinRepository) Upsert(ctx context.Context, userID int64, pinHash string) error {
	const query = `INSERT INTO pins (user_id, pin_hash) VALUES ($1, $2)
                   ON CONFLICT (user_id) DO UPDATE SET pin_hash = EXCLUDED.pin_hash`
	_, err := r.storage.pool.Exec(ctx, query, userID, pinHash)
	return err
}

// --- NotificationRepository implementation ---

const notificationColumns = `id, user_id, title, message, kind, link, read, created_at`

func scanNotification(row pgx.Row) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Kind, &n.Link, &n.Read, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (user_id, title, message, kind, link)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, read, created_at`
	out := *n
	err := r.storage.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Kind, n.Link).
		Scan(&out.ID, &out.Read, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
              WHERE user_id = $1 OR user_id IS NULL ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	query := `UPDATE notifications SET read = TRUE
              WHERE id = $1 AND (user_id = $2 OR user_id IS NULL) RETURNING ` + notificationColumns
	return scanNotification(r.storage.pool.QueryRow(ctx, query, id, userID))
}

// --- TransactionRepository implementation ---

func (r *transactionRepository) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	const query = `SELECT id, user_id, type, amount, details, status, created_at
                   FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Details, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- SettingsRepository implementation ---

func (r *settingsRepository) Get(ctx context.Context, key string, dst any) error {
	var raw []byte
	err := r.storage.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (r *settingsRepository) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	const query = `INSERT INTO settings (key, value) VALUES ($1, $2)
                   ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err = r.storage.pool.Exec(ctx, query, key, raw)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
