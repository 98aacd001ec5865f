package account

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/account"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/models"
	"github.com/BruksfildServices01/turf-booking/internal/validators"
)

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	IsOwner         bool
}

type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type Register struct {
	repo   domain.Repository
	tokens *domain.Tokens

	// emailDomainOK is nil when domain verification is disabled.
	emailDomainOK func(email string) bool
}

func NewRegister(
	repo domain.Repository,
	tokens *domain.Tokens,
	verifyEmailDomain bool,
) *Register {
	uc := &Register{repo: repo, tokens: tokens}
	if verifyEmailDomain {
		uc.emailDomainOK = validators.IsEmailDomainValid
	}
	return uc
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*Session, error) {

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := validateRegistration(username, email, in); err != nil {
		return nil, err
	}

	if uc.emailDomainOK != nil && !uc.emailDomainOK(email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "The email domain does not look valid.")
	}

	taken, err := uc.repo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("username_taken", "Username already taken.")
	}

	taken, err = uc.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("email_taken", "Email already registered.")
	}

	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsOwner:      in.IsOwner,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", u.ID, "role", u.Role())
	return &Session{User: u, Token: token}, nil
}

func validateRegistration(username, email string, in RegisterInput) error {
	if username == "" || email == "" || in.Password == "" {
		return httperr.ErrValidation("missing_fields", "Username, email and password are required.")
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 25 {
		return httperr.ErrValidation("invalid_username", "Username must have 3 to 25 characters.")
	}
	if !validators.IsEmailFormatValid(email) {
		return httperr.ErrValidation("invalid_email", "Email address is not valid.")
	}
	if len(in.Password) < 6 {
		return httperr.ErrValidation("weak_password", "Password must have at least 6 characters.")
	}
	if in.Password != in.ConfirmPassword {
		return httperr.ErrValidation("password_mismatch", "Passwords do not match.")
	}
	return nil
}
