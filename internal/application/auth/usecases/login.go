package usecases

import (
	"context"
	"strings"

	"netbill/internal/domain/user"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	UserID    uint   `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// PasswordVerifier compares a stored hash against a candidate password.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

// TokenIssuer issues a signed session token for a user.
type TokenIssuer interface {
	Generate(userID uint, email string) (string, int64, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	// Credential failures share one message so the endpoint doesn't reveal
	// which emails have accounts.
	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	if account == nil {
		return nil, errors.NewBadRequestError("invalid email or password")
	}
	if !account.IsActive() {
		return nil, errors.NewBadRequestError("invalid email or password")
	}

	if err := uc.verifier.Compare(account.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", account.ID())
		return nil, errors.NewBadRequestError("invalid email or password")
	}

	token, expiresIn, err := uc.issuer.Generate(account.ID(), account.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		UserID:    account.ID(),
		Name:      account.Name(),
		Email:     account.Email(),
	}, nil
}
