package intervention

import (
	"go-rental/internal/common/crud"
	"go-rental/internal/database"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var schema = crud.Schema{
	Module:      "interventions",
	Path:        "/api/interventions",
	Collection:  "interventions",
	DeleteDocBy: crud.DeleteDocByName,
}

func NewInterventionRepository(mongodb *database.MongodbDB) *crud.Repository[*Intervention] {
	return crud.NewRepository(mongodb, schema.Collection, func() *Intervention { return &Intervention{} })
}

func NewInterventionService(repo *crud.Repository[*Intervention], docs document.DocumentService, auditSvc audit.AuditService, logger *zap.Logger) *crud.Service[*Intervention] {
	return crud.NewService(repo, docs, auditSvc, schema, logger)
}

func NewInterventionController(service *crud.Service[*Intervention]) *crud.Controller[*Intervention] {
	return crud.NewController(service, schema, func() *Intervention { return &Intervention{} })
}

type InterventionApi struct {
	controller *crud.Controller[*Intervention]
}

func NewInterventionApi(controller *crud.Controller[*Intervention]) *InterventionApi {
	return &InterventionApi{controller: controller}
}

func (h *InterventionApi) Setup(app *fiber.App) {
	h.controller.Setup(app)
}
