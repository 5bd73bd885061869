package http

import (
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/internal/validators"
	"github.com/MKhiriev/student-portal/models"
)

// Directory is the record store behind the handlers.
type Directory interface {
	List(adminID string, role models.Role) ([]models.User, error)
	Get(id models.ID) (models.User, error)
	Create(adminID string, u models.User) (models.User, error)
	Update(adminID string, id models.ID, u models.User) (models.User, error)
	Delete(adminID string, id models.ID) (models.User, error)
}

// Handler serves the Users API on top of a [Directory].
type Handler struct {
	directory Directory
	validator validators.Validator
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler constructs a Handler. buildInfo is returned by the version
// endpoint.
func NewHandler(directory Directory, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		directory: directory,
		validator: validators.NewUserValidator(),
		buildInfo: buildInfo,
		logger:    logger,
	}
}
