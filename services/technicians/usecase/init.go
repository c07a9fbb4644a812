package usecase

import (
	"github.com/herafy/herafy/internal/pkg/models"
	"github.com/herafy/herafy/services/technicians"
)

type TechnicianUC struct {
	technicianRepo technicians.TechnicianRepo
	cfg            *models.Config
}

// NewTechnicianUC creates a new technician usecase instance
func NewTechnicianUC(
	technicianRepo technicians.TechnicianRepo,
	cfg *models.Config,
) *TechnicianUC {
	return &TechnicianUC{
		technicianRepo: technicianRepo,
		cfg:            cfg,
	}
}
