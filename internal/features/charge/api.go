package charge

import (
	"go-rental/internal/common/crud"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var schema = crud.Schema{
	Module:      "charges",
	Path:        "/api/charges",
	Collection:  "charges",
	DeleteDocBy: crud.DeleteDocByName,
}

func NewChargeRepository(mongodb *database.MongodbDB) *crud.Repository[*Charge] {
	return crud.NewRepository(mongodb, schema.Collection, func() *Charge { return &Charge{} })
}

func NewChargeService(repo *crud.Repository[*Charge], docs document.DocumentService, auditSvc audit.AuditService, logger *zap.Logger) *crud.Service[*Charge] {
	return crud.NewService(repo, docs, auditSvc, schema, logger)
}

func NewChargeController(service *crud.Service[*Charge]) *crud.Controller[*Charge] {
	return crud.NewController(service, schema, func() *Charge { return &Charge{} })
}

type ChargeApi struct {
	controller *crud.Controller[*Charge]
}

func NewChargeApi(controller *crud.Controller[*Charge]) *ChargeApi {
	return &ChargeApi{controller: controller}
}

func (h *ChargeApi) Setup(app *fiber.App) {
	h.controller.Setup(app)
}
