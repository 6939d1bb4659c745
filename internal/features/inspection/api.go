package inspection

import (
	"go-rental/internal/common/crud"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Single certificate scan per inspection, identified by URL on delete.
var schema = crud.Schema{
	Module:         "vehicleinspections",
	Path:           "/api/vehicleinspections",
	Collection:     "vehicle_inspections",
	SingleDocument: true,
	DeleteDocBy:    crud.DeleteDocByURL,
}

func NewInspectionRepository(mongodb *database.MongodbDB) *crud.Repository[*Inspection] {
	return crud.NewRepository(mongodb, schema.Collection, func() *Inspection { return &Inspection{} })
}

func NewInspectionService(repo *crud.Repository[*Inspection], docs document.DocumentService, auditSvc audit.AuditService, logger *zap.Logger) *crud.Service[*Inspection] {
	return crud.NewService(repo, docs, auditSvc, schema, logger)
}

func NewInspectionController(service *crud.Service[*Inspection]) *crud.Controller[*Inspection] {
	return crud.NewController(service, schema, func() *Inspection { return &Inspection{} })
}

type InspectionApi struct {
	controller *crud.Controller[*Inspection]
}

func NewInspectionApi(controller *crud.Controller[*Inspection]) *InspectionApi {
	return &InspectionApi{controller: controller}
}

func (h *InspectionApi) Setup(app *fiber.App) {
	h.controller.Setup(app)
}
