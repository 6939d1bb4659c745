package stats

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Service StatsService
}

func NewStatsController(service StatsService) *StatsController {
	return &StatsController{Service: service}
}

// FleetSummary godoc
// @Summary Fleet dashboard summary
// @Description Vehicle counts per status, current month totals and upcoming deadlines
// @Tags stats
// @Produce json
// @Success 200 {object} FleetSummary
// @Failure 500 {object} map[string]interface{}
// @Router /api/stats/fleet [get]
func (ctrl *StatsController) FleetSummary(c *fiber.Ctx) error {
	summary, err := ctrl.Service.FleetSummary(c.UserContext(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
