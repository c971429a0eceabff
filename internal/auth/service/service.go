// Package service implements account registration, login and credential changes.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"charity/internal/auth/models"
	"charity/internal/charity"
	jwttoken "charity/internal/jwt_token"
	"charity/internal/platform/metrics"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/sentinel"
	txcontext "charity/pkg/platform/tx"
	"charity/pkg/requestcontext"
)

const tokenType = "Bearer"

var errBadCredentials = dErrors.New(dErrors.CodeUnauthorized, "Unable to log in with provided credentials.")

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, u *models.User) error
}

// CharityAccounts provisions the charity profile behind a charity login.
type CharityAccounts interface {
	CreateForUser(ctx context.Context, userID int64, name string) (*charity.Charity, error)
	ForUser(ctx context.Context, userID int64) (*charity.Charity, error)
}

// BeneficiaryAccounts provisions the beneficiary registration behind a beneficiary login.
type BeneficiaryAccounts interface {
	CheckAvailable(ctx context.Context, identificationNumber, code string) error
	Register(ctx context.Context, userID int64, identificationNumber, code string) (int64, error)
	IDForUser(ctx context.Context, userID int64) (int64, error)
}

type TokenIssuer interface {
	GenerateAccessToken(subject jwttoken.Subject, expiresIn time.Duration) (string, error)
}

// Lockout throttles repeated failed logins per role and username.
type Lockout interface {
	Check(ctx context.Context, scope, identifier string) error
	RecordFailure(ctx context.Context, scope, identifier string) error
	Clear(ctx context.Context, scope, identifier string) error
}

type Config struct {
	TokenTTL   time.Duration
	BcryptCost int
}

type Service struct {
	users         UserStore
	charities     CharityAccounts
	beneficiaries BeneficiaryAccounts
	tokens        TokenIssuer
	lockout       Lockout
	tx            txcontext.Runner
	cfg           Config
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

type Option func(*Service)

func WithTxRunner(r txcontext.Runner) Option {
	return func(s *Service) { s.tx = r }
}

func WithLockout(l Lockout) Option {
	return func(s *Service) { s.lockout = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(users UserStore, charities CharityAccounts, beneficiaries BeneficiaryAccounts, tokens TokenIssuer, cfg Config, opts ...Option) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	s := &Service{
		users:         users,
		charities:     charities,
		beneficiaries: beneficiaries,
		tokens:        tokens,
		tx:            txcontext.NoopRunner{},
		cfg:           cfg,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) createUser(ctx context.Context, username, password string, role requestcontext.Role) (*models.User, error) {
	hash, err := hashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    requestcontext.Now(ctx),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeValidation, "A user with that username already exists.")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}
	return u, nil
}

// RegisterCharity creates a charity account and its profile, named after the username.
func (s *Service) RegisterCharity(ctx context.Context, req *models.RegisterCharityRequest) (*models.Registered, error) {
	var u *models.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if u, err = s.createUser(ctx, req.Username, req.Password, requestcontext.RoleCharity); err != nil {
			return err
		}
		_, err = s.charities.CreateForUser(ctx, u.ID, req.Username)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.metrics.AccountRegistered(string(requestcontext.RoleCharity))
	s.logger.InfoContext(ctx, "charity registered", "user_id", u.ID)
	return registered(u), nil
}

// RegisterBeneficiary creates a beneficiary account. The identification number is
// the username and the beneficiary id is the initial password.
func (s *Service) RegisterBeneficiary(ctx context.Context, req *models.RegisterBeneficiaryRequest) (*models.Registered, error) {
	var u *models.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.beneficiaries.CheckAvailable(ctx, req.Username, req.Password); err != nil {
			return err
		}
		var err error
		if u, err = s.createUser(ctx, req.Username, req.Password, requestcontext.RoleBeneficiary); err != nil {
			return err
		}
		_, err = s.beneficiaries.Register(ctx, u.ID, req.Username, req.Password)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.metrics.AccountRegistered(string(requestcontext.RoleBeneficiary))
	s.logger.InfoContext(ctx, "beneficiary registered", "user_id", u.ID)
	return registered(u), nil
}

func registered(u *models.User) *models.Registered {
	return &models.Registered{
		User:    models.RegisteredUser{ID: u.ID, Username: u.Username},
		Message: "User created successfully.",
	}
}

// authenticate checks credentials for an account of the given role. A
// lockout store that is unreachable does not block logins.
func (s *Service) authenticate(ctx context.Context, req *models.LoginRequest, role requestcontext.Role) (*models.User, error) {
	scope := string(role)
	if s.lockout != nil {
		if err := s.lockout.Check(ctx, scope, req.Username); err != nil {
			if dErrors.HasCode(err, dErrors.CodeRateLimited) {
				return nil, err
			}
			s.logger.WarnContext(ctx, "login lockout check failed", "error", err)
		}
	}

	u, err := s.verify(ctx, req, role)
	if s.lockout == nil {
		return u, err
	}
	switch {
	case err == nil:
		if cerr := s.lockout.Clear(ctx, scope, req.Username); cerr != nil {
			s.logger.WarnContext(ctx, "failed to clear login lockout", "error", cerr)
		}
	case errors.Is(err, errBadCredentials):
		if ferr := s.lockout.RecordFailure(ctx, scope, req.Username); ferr != nil {
			s.logger.WarnContext(ctx, "failed to record login failure", "error", ferr)
		}
	}
	return u, err
}

func (s *Service) verify(ctx context.Context, req *models.LoginRequest, role requestcontext.Role) (*models.User, error) {
	u, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	ok, err := passwordMatches(req.Password, u.PasswordHash)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify password")
	}
	if !ok || u.Role != role {
		return nil, errBadCredentials
	}
	if !u.IsActive {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "User account is disabled.")
	}
	return u, nil
}

func (s *Service) issue(subject jwttoken.Subject) (*models.TokenResult, error) {
	token, err := s.tokens.GenerateAccessToken(subject, s.cfg.TokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	return &models.TokenResult{
		AccessToken:   token,
		TokenType:     tokenType,
		ExpiresIn:     int(s.cfg.TokenTTL.Seconds()),
		UserID:        subject.UserID,
		CharityID:     subject.CharityID,
		BeneficiaryID: subject.BeneficiaryID,
	}, nil
}

func (s *Service) LoginCharity(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error) {
	u, err := s.authenticate(ctx, req, requestcontext.RoleCharity)
	if err != nil {
		return nil, err
	}
	c, err := s.charities.ForUser(ctx, u.ID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	return s.issue(jwttoken.Subject{UserID: u.ID, Role: string(u.Role), CharityID: c.ID})
}

func (s *Service) LoginBeneficiary(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error) {
	u, err := s.authenticate(ctx, req, requestcontext.RoleBeneficiary)
	if err != nil {
		return nil, err
	}
	beneficiaryID, err := s.beneficiaries.IDForUser(ctx, u.ID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	return s.issue(jwttoken.Subject{UserID: u.ID, Role: string(u.Role), BeneficiaryID: beneficiaryID})
}

// LoginStaff authenticates the seeded staff account.
func (s *Service) LoginStaff(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error) {
	u, err := s.authenticate(ctx, req, requestcontext.RoleStaff)
	if err != nil {
		return nil, err
	}
	return s.issue(jwttoken.Subject{UserID: u.ID, Role: string(u.Role)})
}

func (s *Service) user(ctx context.Context, userID int64) (*models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return u, nil
}

// ChangeUsername renames the account. Usernames stay unique.
func (s *Service) ChangeUsername(ctx context.Context, userID int64, req *models.ChangeUsernameRequest) (*models.User, error) {
	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Username == req.Username {
		return u, nil
	}
	taken, err := s.users.UsernameTaken(ctx, req.Username)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check username")
	}
	if taken {
		return nil, dErrors.New(dErrors.CodeValidation, "This charity username is already taken.")
	}
	u.Username = req.Username
	u.UpdatedAt = requestcontext.Now(ctx)
	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeValidation, "This charity username is already taken.")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update user")
	}
	return u, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error {
	u, err := s.user(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := passwordMatches(req.OldPassword, u.PasswordHash)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify password")
	}
	if !ok {
		return dErrors.New(dErrors.CodeValidation, "old_password: Old password is not correct.")
	}
	hash, err := hashPassword(req.NewPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.UpdatedAt = requestcontext.Now(ctx)
	if err := s.users.Update(ctx, u); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update user")
	}
	s.logger.InfoContext(ctx, "password changed", "user_id", u.ID)
	return nil
}

// SeedStaff creates the staff account if it does not exist yet. An empty username disables seeding.
func (s *Service) SeedStaff(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up staff user")
	}
	u, err := s.createUser(ctx, username, password, requestcontext.RoleStaff)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "staff user created", "user_id", u.ID, "username", username)
	return nil
}
