package account

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/turf-booking/internal/domain/account"
	"github.com/BruksfildServices01/turf-booking/internal/httperr"
)

// ErrInvalidCredentials is returned for an unknown user and a wrong
// password alike.
var ErrInvalidCredentials = httperr.ErrValidation("invalid_credentials", "Invalid username or password.")

type Login struct {
	repo   domain.Repository
	tokens *domain.Tokens
}

func NewLogin(repo domain.Repository, tokens *domain.Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (*Session, error) {

	u, err := uc.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !domain.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &Session{User: u, Token: token}, nil
}
