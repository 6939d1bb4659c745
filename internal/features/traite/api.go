package traite

import (
	"go-rental/internal/common/crud"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var schema = crud.Schema{
	Module:      "traites",
	Path:        "/api/traites",
	Collection:  "traites",
	DeleteDocBy: crud.DeleteDocByName,
}

func NewTraiteRepository(mongodb *database.MongodbDB) *crud.Repository[*Traite] {
	return crud.NewRepository(mongodb, schema.Collection, func() *Traite { return &Traite{} })
}

func NewTraiteService(repo *crud.Repository[*Traite], docs document.DocumentService, auditSvc audit.AuditService, logger *zap.Logger) *crud.Service[*Traite] {
	return crud.NewService(repo, docs, auditSvc, schema, logger)
}

func NewTraiteController(service *crud.Service[*Traite]) *crud.Controller[*Traite] {
	return crud.NewController(service, schema, func() *Traite { return &Traite{} })
}

type TraiteApi struct {
	controller *crud.Controller[*Traite]
}

func NewTraiteApi(controller *crud.Controller[*Traite]) *TraiteApi {
	return &TraiteApi{controller: controller}
}

func (h *TraiteApi) Setup(app *fiber.App) {
	h.controller.Setup(app)
}
