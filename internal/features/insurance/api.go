package insurance

import (
	"go-rental/internal/common/crud"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// The console attaches a single policy scan and identifies it by URL on
// delete, unlike the multi-document entities.
var schema = crud.Schema{
	Module:         "vehicleinsurances",
	Path:           "/api/vehicleinsurances",
	Collection:     "vehicle_insurances",
	SingleDocument: true,
	DeleteDocBy:    crud.DeleteDocByURL,
}

func NewInsuranceRepository(mongodb *database.MongodbDB) *crud.Repository[*Insurance] {
	return crud.NewRepository(mongodb, schema.Collection, func() *Insurance { return &Insurance{} })
}

func NewInsuranceService(repo *crud.Repository[*Insurance], docs document.DocumentService, auditSvc audit.AuditService, logger *zap.Logger) *crud.Service[*Insurance] {
	return crud.NewService(repo, docs, auditSvc, schema, logger)
}

func NewInsuranceController(service *crud.Service[*Insurance]) *crud.Controller[*Insurance] {
	return crud.NewController(service, schema, func() *Insurance { return &Insurance{} })
}

type InsuranceApi struct {
	controller *crud.Controller[*Insurance]
}

func NewInsuranceApi(controller *crud.Controller[*Insurance]) *InsuranceApi {
	return &InsuranceApi{controller: controller}
}

func (h *InsuranceApi) Setup(app *fiber.App) {
	h.controller.Setup(app)
}
