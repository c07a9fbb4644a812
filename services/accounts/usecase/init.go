package usecase

import (
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/services/accounts"
)

type AccountUC struct {
	accountRepo accounts.AccountRepo
	cfg         *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountRepo accounts.AccountRepo,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}
