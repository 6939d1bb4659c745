package vehicle

import (
	"go-rental/internal/common/crud"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var schema = crud.Schema{
	Module:      "vehicles",
	Path:        "/api/vehicles",
	Collection:  "vehicles",
	DeleteDocBy: crud.DeleteDocByName,
}

func NewVehicleRepository(mongodb *database.MongodbDB) *crud.Repository[*Vehicle] {
	return crud.NewRepository(mongodb, schema.Collection, func() *Vehicle { return &Vehicle{} })
}

func NewVehicleService(repo *crud.Repository[*Vehicle], docs document.DocumentService, auditSvc audit.AuditService, logger *zap.Logger) *crud.Service[*Vehicle] {
	return crud.NewService(repo, docs, auditSvc, schema, logger)
}

func NewVehicleController(service *crud.Service[*Vehicle]) *crud.Controller[*Vehicle] {
	return crud.NewController(service, schema, func() *Vehicle { return &Vehicle{} })
}

type VehicleApi struct {
	controller *crud.Controller[*Vehicle]
}

func NewVehicleApi(controller *crud.Controller[*Vehicle]) *VehicleApi {
	return &VehicleApi{controller: controller}
}

func (h *VehicleApi) Setup(app *fiber.App) {
	h.controller.Setup(app)
}
