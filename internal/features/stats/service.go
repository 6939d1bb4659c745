package stats

import (
	"context"
	"time"

	"go-rental/internal/rule"
)

// FleetSummary is the number block at the top of the console dashboard.
type FleetSummary struct {
	Vehicles                map[string]int64 `json:"vehicles"` // count per status
	ChargesThisMonth        float64          `json:"charges_this_month"`
	InterventionsThisMonth  float64          `json:"interventions_this_month"`
	TraitesDueSoon          int64            `json:"traites_due_soon"`
	InsurancesExpiringSoon  int64            `json:"insurances_expiring_soon"`
	InspectionsExpiringSoon int64            `json:"inspections_expiring_soon"`
}

type StatsService interface {
	FleetSummary(ctx context.Context, now time.Time) (*FleetSummary, error)
}

type StatsServiceImpl struct {
	Repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &StatsServiceImpl{Repo: repo}
}

const dateLayout = "2006-01-02"

func (s *StatsServiceImpl) FleetSummary(ctx context.Context, now time.Time) (*FleetSummary, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := rule.AddMonthsClamped(monthStart, 1).AddDate(0, 0, -1)
	soon := now.AddDate(0, 0, 30)

	vehicles, err := s.Repo.CountVehiclesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	charges, err := s.Repo.SumAmountBetween(ctx, "charges", "date", monthStart.Format(dateLayout), monthEnd.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	interventions, err := s.Repo.SumAmountBetween(ctx, "interventions", "date", monthStart.Format(dateLayout), monthEnd.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	traites, err := s.Repo.CountTraitesDueBefore(ctx, soon.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	insurances, err := s.Repo.CountExpiringBefore(ctx, "vehicle_insurances", "end_date", now.Format(dateLayout), soon.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	inspections, err := s.Repo.CountExpiringBefore(ctx, "vehicle_inspections", "expiry_date", now.Format(dateLayout), soon.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	return &FleetSummary{
		Vehicles:                vehicles,
		ChargesThisMonth:        charges,
		InterventionsThisMonth:  interventions,
		TraitesDueSoon:          traites,
		InsurancesExpiringSoon:  insurances,
		InspectionsExpiringSoon: inspections,
	}, nil
}
