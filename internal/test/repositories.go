package test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	sync.Mutex
	ByID     map[int64]*model.User
	Next     int64
	Err      error
	CreateFn func(context.Context, string, string, string, *int64, float64) (*model.User, error)
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByID: make(map[int64]*model.User), Next: 1}
}

// Add seeds a user directly, assigning an ID when missing.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	s.Lock()
	defer s.Unlock()
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if user.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.ByID[user.ID] = user
	return user
}

// Create registers user unless one with the same username or email exists.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string, inviterID *int64, bonus float64) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, username, email, passwordHash, inviterID, bonus)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	for _, u := range s.ByID {
		if strings.EqualFold(u.Username, username) || u.Email == email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           s.Next,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Level:        1,
		InvitedBy:    inviterID,
	}
	s.Next++
	if inviterID != nil && bonus > 0 {
		user.Balance = bonus
		user.ReferralBonus = bonus
		if inviter, ok := s.ByID[*inviterID]; ok {
			inviter.Balance += bonus
			inviter.ReferralBonus += bonus
		}
	}
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for _, u := range s.ByID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUsername fetches user by username, case-insensitively.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for _, u := range s.ByID {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateEmail replaces the stored email.
func (s *UserRepositoryStub) UpdateEmail(ctx context.Context, id int64, email string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Lock()
	defer s.Unlock()
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Email = email
	return nil
}

// TouchLastLogin records the call without changing stored state.
func (s *UserRepositoryStub) TouchLastLogin(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	return nil
}

// LedgerCall records one balance mutation applied through the stub.
type LedgerCall struct {
	UserID  int64
	Amount  float64
	Cause   model.TransactionType
	Details string
	Debit   bool
}

// LedgerRepositoryStub tracks balance mutations against an in-memory map.
type LedgerRepositoryStub struct {
	sync.Mutex
	Balances map[int64]float64
	Calls    []LedgerCall
	Err      error
}

// NewLedgerRepositoryStub constructs a ledger stub with initialized balances.
func NewLedgerRepositoryStub() *LedgerRepositoryStub {
	return &LedgerRepositoryStub{Balances: make(map[int64]float64)}
}

// Credit increases the stored balance.
func (s *LedgerRepositoryStub) Credit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.Balances == nil {
		s.Balances = make(map[int64]float64)
	}
	s.Balances[userID] += amount
	s.Calls = append(s.Calls, LedgerCall{UserID: userID, Amount: amount, Cause: cause, Details: details})
	return nil
}

// Debit decreases the stored balance, refusing overdrafts.
func (s *LedgerRepositoryStub) Debit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.Balances == nil {
		s.Balances = make(map[int64]float64)
	}
	if s.Balances[userID] < amount {
		return domainErrors.ErrInsufficientBalance
	}
	s.Balances[userID] -= amount
	s.Calls = append(s.Calls, LedgerCall{UserID: userID, Amount: amount, Cause: cause, Details: details, Debit: true})
	return nil
}

// SellRequestUpdateCall records one status transition request.
type SellRequestUpdateCall struct {
	ID     int64
	Status model.SellRequestStatus
	Tiers  model.TierTable
}

// SellRequestRepositoryStub allows tests to customize sell-request behaviour.
type SellRequestRepositoryStub struct {
	sync.Mutex
	CreateFn       func(context.Context, *model.SellRequest) (*model.SellRequest, error)
	UpdateStatusFn func(context.Context, int64, model.SellRequestStatus, model.TierTable) (*model.SellRequest, error)
	Items          []model.SellRequest
	Created        []*model.SellRequest
	UpdateCalls    []SellRequestUpdateCall
	Next           int64
	Err            error
}

// Create tracks invocations and returns configured responses.
func (s *SellRequestRepositoryStub) Create(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *req
	stored.ID = s.Next
	stored.Status = model.SellStatusPending
	s.Next++
	s.Created = append(s.Created, &stored)
	s.Items = append(s.Items, stored)
	return &stored, nil
}

// GetByID returns a stored request or not found.
func (s *SellRequestRepositoryStub) GetByID(ctx context.Context, id int64) (*model.SellRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for i := range s.Items {
		if s.Items[i].ID == id {
			req := s.Items[i]
			return &req, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser filters stored requests by owner.
func (s *SellRequestRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.SellRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	var out []model.SellRequest
	for _, r := range s.Items {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListAll returns every stored request.
func (s *SellRequestRepositoryStub) ListAll(ctx context.Context) ([]model.SellRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	return append([]model.SellRequest(nil), s.Items...), nil
}

// ListUnmarked returns stored requests with Marked unset.
func (s *SellRequestRepositoryStub) ListUnmarked(ctx context.Context) ([]model.SellRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	var out []model.SellRequest
	for _, r := range s.Items {
		if !r.Marked {
			out = append(out, r)
		}
	}
	return out, nil
}

// UpdateStatus records the transition and applies it to stored items.
func (s *SellRequestRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.SellRequestStatus, tiers model.TierTable) (*model.SellRequest, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, tiers)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	s.UpdateCalls = append(s.UpdateCalls, SellRequestUpdateCall{ID: id, Status: status, Tiers: tiers})
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		if s.Items[i].Status == status {
			req := s.Items[i]
			return &req, nil
		}
		if s.Items[i].Status.Terminal() {
			return nil, domainErrors.ErrInvalidState
		}
		s.Items[i].Status = status
		req := s.Items[i]
		return &req, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SetMarked flags the request as exported.
func (s *SellRequestRepositoryStub) SetMarked(ctx context.Context, id int64) (*model.SellRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Marked = true
			req := s.Items[i]
			return &req, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// WithdrawalUpdateCall records one settlement request.
type WithdrawalUpdateCall struct {
	ID      int64
	Status  model.WithdrawalStatus
	Comment *string
}

// WithdrawalRepositoryStub simulates withdrawal persistence.
type WithdrawalRepositoryStub struct {
	sync.Mutex
	CreateFn       func(context.Context, int64, int64, float64) (*model.Withdrawal, error)
	UpdateStatusFn func(context.Context, int64, model.WithdrawalStatus, *string) (*model.Withdrawal, bool, error)
	Items          []model.Withdrawal
	Balances       map[int64]float64
	UpdateCalls    []WithdrawalUpdateCall
	Next           int64
	Err            error
}

// NewWithdrawalRepositoryStub constructs a withdrawal stub with balances.
func NewWithdrawalRepositoryStub() *WithdrawalRepositoryStub {
	return &WithdrawalRepositoryStub{Balances: make(map[int64]float64), Next: 1}
}

// Create debits the stored balance and records the withdrawal.
func (s *WithdrawalRepositoryStub) Create(ctx context.Context, userID, bankAccountID int64, amount float64) (*model.Withdrawal, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, bankAccountID, amount)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.Balances == nil {
		s.Balances = make(map[int64]float64)
	}
	if s.Balances[userID] < amount {
		return nil, domainErrors.ErrInsufficientBalance
	}
	s.Balances[userID] -= amount
	if s.Next == 0 {
		s.Next = 1
	}
	w := model.Withdrawal{ID: s.Next, UserID: userID, BankAccountID: bankAccountID, Amount: amount, Status: model.WithdrawalStatusPending}
	s.Next++
	s.Items = append(s.Items, w)
	return &w, nil
}

// GetByID returns a stored withdrawal or not found.
func (s *WithdrawalRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Withdrawal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for i := range s.Items {
		if s.Items[i].ID == id {
			w := s.Items[i]
			return &w, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser filters stored withdrawals by owner.
func (s *WithdrawalRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	var out []model.Withdrawal
	for _, w := range s.Items {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

// ListAll returns every stored withdrawal.
func (s *WithdrawalRepositoryStub) ListAll(ctx context.Context) ([]model.Withdrawal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	return append([]model.Withdrawal(nil), s.Items...), nil
}

// UpdateStatus settles a pending withdrawal, refunding on failure. A
// same-status request is a no-op reporting no transition.
func (s *WithdrawalRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.WithdrawalStatus, adminComment *string) (*model.Withdrawal, bool, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, adminComment)
	}
	if s.Err != nil {
		return nil, false, s.Err
	}
	s.Lock()
	defer s.Unlock()
	s.UpdateCalls = append(s.UpdateCalls, WithdrawalUpdateCall{ID: id, Status: status, Comment: adminComment})
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		if s.Items[i].Status == status {
			w := s.Items[i]
			return &w, false, nil
		}
		if s.Items[i].Status != model.WithdrawalStatusPending {
			return nil, false, domainErrors.ErrInvalidState
		}
		s.Items[i].Status = status
		if adminComment != nil {
			s.Items[i].AdminComment = *adminComment
		}
		if status == model.WithdrawalStatusFailed && s.Balances != nil {
			s.Balances[s.Items[i].UserID] += s.Items[i].Amount
		}
		w := s.Items[i]
		return &w, true, nil
	}
	return nil, false, domainErrors.ErrNotFound
}

// SetMarked flags the withdrawal as exported.
func (s *WithdrawalRepositoryStub) SetMarked(ctx context.Context, id int64) (*model.Withdrawal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Marked = true
			w := s.Items[i]
			return &w, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// BankAccountRepositoryStub stores payout accounts in-memory.
type BankAccountRepositoryStub struct {
	sync.Mutex
	Items []model.BankAccount
	Next  int64
	Err   error
}

// Create stores a new account.
func (s *BankAccountRepositoryStub) Create(ctx context.Context, userID int64, bankName, accountNumber, accountName string) (*model.BankAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.Next == 0 {
		s.Next = 1
	}
	acc := model.BankAccount{ID: s.Next, UserID: userID, BankName: bankName, AccountNumber: accountNumber, AccountName: accountName}
	s.Next++
	s.Items = append(s.Items, acc)
	return &acc, nil
}

// GetForUser returns the user's account with the given id.
func (s *BankAccountRepositoryStub) GetForUser(ctx context.Context, id, userID int64) (*model.BankAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for _, acc := range s.Items {
		if acc.ID == id && acc.UserID == userID {
			found := acc
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser filters stored accounts by owner.
func (s *BankAccountRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.BankAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	var out []model.BankAccount
	for _, acc := range s.Items {
		if acc.UserID == userID {
			out = append(out, acc)
		}
	}
	return out, nil
}

// CountByUser counts the user's stored accounts.
func (s *BankAccountRepositoryStub) CountByUser(ctx context.Context, userID int64) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Lock()
	defer s.Unlock()
	count := 0
	for _, acc := range s.Items {
		if acc.UserID == userID {
			count++
		}
	}
	return count, nil
}

// Delete removes the user's account with the given id.
func (s *BankAccountRepositoryStub) Delete(ctx context.Context, id, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Lock()
	defer s.Unlock()
	for i, acc := range s.Items {
		if acc.ID == id && acc.UserID == userID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// InvitationRepositoryStub stores referral codes in-memory.
type InvitationRepositoryStub struct {
	sync.Mutex
	CreateFn func(context.Context, int64, string) (*model.InvitationCode, error)
	ByUser   map[int64]*model.InvitationCode
	ByCode   map[string]*model.InvitationCode
	Next     int64
	Err      error
}

// NewInvitationRepositoryStub constructs an invitation stub with maps.
func NewInvitationRepositoryStub() *InvitationRepositoryStub {
	return &InvitationRepositoryStub{
		ByUser: make(map[int64]*model.InvitationCode),
		ByCode: make(map[string]*model.InvitationCode),
		Next:   1,
	}
}

// Create stores a new code, refusing duplicates.
func (s *InvitationRepositoryStub) Create(ctx context.Context, userID int64, code string) (*model.InvitationCode, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, code)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.ByUser == nil {
		s.ByUser = make(map[int64]*model.InvitationCode)
	}
	if s.ByCode == nil {
		s.ByCode = make(map[string]*model.InvitationCode)
	}
	if _, exists := s.ByCode[code]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if existing, exists := s.ByUser[userID]; exists {
		return existing, nil
	}
	if s.Next == 0 {
		s.Next = 1
	}
	inv := &model.InvitationCode{ID: s.Next, UserID: userID, Code: code}
	s.Next++
	s.ByUser[userID] = inv
	s.ByCode[code] = inv
	return inv, nil
}

// GetByUser returns the user's code or not found.
func (s *InvitationRepositoryStub) GetByUser(ctx context.Context, userID int64) (*model.InvitationCode, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if inv, ok := s.ByUser[userID]; ok {
		return inv, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByCode resolves a code back to its owner.
func (s *InvitationRepositoryStub) GetByCode(ctx context.Context, code string) (*model.InvitationCode, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if inv, ok := s.ByCode[code]; ok {
		return inv, nil
	}
	return nil, domainErrors.ErrNotFound
}

// PinRepositoryStub stores PIN hashes per user.
type PinRepositoryStub struct {
	sync.Mutex
	Hashes map[int64]string
	Err    error
}

// NewPinRepositoryStub constructs a PIN stub with an initialized map.
func NewPinRepositoryStub() *PinRepositoryStub {
	return &PinRepositoryStub{Hashes: make(map[int64]string)}
}

// GetHash returns the stored hash or not found.
func (s *PinRepositoryStub) GetHash(ctx context.Context, userID int64) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.Lock()
	defer s.Unlock()
	if hash, ok := s.Hashes[userID]; ok {
		return hash, nil
	}
	return "", domainErrors.ErrNotFound
}

// Upsert stores the hash for the user.
func (s *PinRepositoryStub) Upsert(ctx context.Context, userID int64, pinHash string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.Hashes == nil {
		s.Hashes = make(map[int64]string)
	}
	s.Hashes[userID] = pinHash
	return nil
}

// NotificationRepositoryStub stores notifications in-memory.
type NotificationRepositoryStub struct {
	sync.Mutex
	Items []model.Notification
	Next  int64
	Err   error
}

// Create stores the notification and assigns an id.
func (s *NotificationRepositoryStub) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *n
	stored.ID = s.Next
	s.Next++
	s.Items = append(s.Items, stored)
	return &stored, nil
}

// ListForUser returns the user's notifications plus broadcasts.
func (s *NotificationRepositoryStub) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	var out []model.Notification
	for _, n := range s.Items {
		if n.UserID == nil || *n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkRead flags a notification visible to the user as read.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Lock()
	defer s.Unlock()
	for i := range s.Items {
		if s.Items[i].ID == id && (s.Items[i].UserID == nil || *s.Items[i].UserID == userID) {
			s.Items[i].Read = true
			n := s.Items[i]
			return &n, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// TransactionRepositoryStub returns configured ledger history.
type TransactionRepositoryStub struct {
	ListFn func(context.Context, int64) ([]model.Transaction, error)
	Items  []model.Transaction
	Err    error
}

// ListByUser filters stored transactions by owner.
func (s *TransactionRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Transaction
	for _, tr := range s.Items {
		if tr.UserID == userID {
			out = append(out, tr)
		}
	}
	return out, nil
}

// SettingsRepositoryStub keeps JSON-encoded values in a map.
type SettingsRepositoryStub struct {
	sync.Mutex
	Values map[string][]byte
	Err    error
}

// NewSettingsRepositoryStub constructs a settings stub with a map.
func NewSettingsRepositoryStub() *SettingsRepositoryStub {
	return &SettingsRepositoryStub{Values: make(map[string][]byte)}
}

// Get decodes the stored value into dst or returns not found.
func (s *SettingsRepositoryStub) Get(ctx context.Context, key string, dst any) error {
	if s.Err != nil {
		return s.Err
	}
	s.Lock()
	defer s.Unlock()
	raw, ok := s.Values[key]
	if !ok {
		return domainErrors.ErrNotFound
	}
	return json.Unmarshal(raw, dst)
}

// Set stores the JSON encoding of value.
func (s *SettingsRepositoryStub) Set(ctx context.Context, key string, value any) error {
	if s.Err != nil {
		return s.Err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()
	if s.Values == nil {
		s.Values = make(map[string][]byte)
	}
	s.Values[key] = raw
	return nil
}

// FactoryStub bundles repository stubs behind the factory interface.
type FactoryStub struct {
	UsersStub         *UserRepositoryStub
	LedgerStub        *LedgerRepositoryStub
	SellRequestsStub  *SellRequestRepositoryStub
	WithdrawalsStub   *WithdrawalRepositoryStub
	BankAccountsStub  *BankAccountRepositoryStub
	InvitationsStub   *InvitationRepositoryStub
	PinsStub          *PinRepositoryStub
	NotificationsStub *NotificationRepositoryStub
	TransactionsStub  *TransactionRepositoryStub
	SettingsStub      *SettingsRepositoryStub
}

// NewFactoryStub constructs a factory with every stub initialized.
func NewFactoryStub() *FactoryStub {
	return &FactoryStub{
		UsersStub:         NewUserRepositoryStub(),
		LedgerStub:        NewLedgerRepositoryStub(),
		SellRequestsStub:  &SellRequestRepositoryStub{},
		WithdrawalsStub:   NewWithdrawalRepositoryStub(),
		BankAccountsStub:  &BankAccountRepositoryStub{},
		InvitationsStub:   NewInvitationRepositoryStub(),
		PinsStub:          NewPinRepositoryStub(),
		NotificationsStub: &NotificationRepositoryStub{},
		TransactionsStub:  &TransactionRepositoryStub{},
		SettingsStub:      NewSettingsRepositoryStub(),
	}
}

// Users returns the user stub.
func (f *FactoryStub) Users() repository.UserRepository { return f.UsersStub }

// Ledger returns the ledger stub.
func (f *FactoryStub) Ledger() repository.LedgerRepository { return f.LedgerStub }

// SellRequests returns the sell-request stub.
func (f *FactoryStub) SellRequests() repository.SellRequestRepository { return f.SellRequestsStub }

// Withdrawals returns the withdrawal stub.
func (f *FactoryStub) Withdrawals() repository.WithdrawalRepository { return f.WithdrawalsStub }

// BankAccounts returns the bank-account stub.
func (f *FactoryStub) BankAccounts() repository.BankAccountRepository { return f.BankAccountsStub }

// Invitations returns the invitation stub.
func (f *FactoryStub) Invitations() repository.InvitationRepository { return f.InvitationsStub }

// Pins returns the PIN stub.
func (f *FactoryStub) Pins() repository.PinRepository { return f.PinsStub }

// Notifications returns the notification stub.
func (f *FactoryStub) Notifications() repository.NotificationRepository { return f.NotificationsStub }

// Transactions returns the transaction stub.
func (f *FactoryStub) Transactions() repository.TransactionRepository { return f.TransactionsStub }

// Settings returns the settings stub.
func (f *FactoryStub) Settings() repository.SettingsRepository { return f.SettingsStub }
