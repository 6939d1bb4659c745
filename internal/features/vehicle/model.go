package vehicle

import (
	"time"

	"go-rental/internal/common/crud"
	"go-rental/internal/rule"
)

// VehicleStatus tracks where a vehicle currently is in the fleet.
type VehicleStatus string

const (
	StatusAvailable   VehicleStatus = "available"
	StatusRented      VehicleStatus = "rented"
	StatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle is one car of the rental fleet.
type Vehicle struct {
	crud.Model `bson:",inline"`

	Registration  string        `json:"registration" bson:"registration" form:"registration" rule:"notblank"`
	Brand         string        `json:"brand" bson:"brand" form:"brand" rule:"notblank"`
	ModelName     string        `json:"model" bson:"model" form:"model" rule:"notblank"`
	Year          int           `json:"year" bson:"year" form:"year" rule:"min=1"`
	PurchasePrice float64       `json:"purchase_price" bson:"purchase_price" form:"purchase_price" rule:"min=0"`
	DailyRate     float64       `json:"daily_rate" bson:"daily_rate" form:"daily_rate" rule:"min=1"`
	Mileage       int64         `json:"mileage" bson:"mileage" form:"mileage" rule:"min=0"`
	Status        VehicleStatus `json:"status" bson:"status" form:"status" rule:"omitempty,oneof=available rented maintenance"`
}

func (v *Vehicle) Validate(_ time.Time) rule.ValidationErrors {
	if v.Status == "" {
		v.Status = StatusAvailable
	}
	return nil
}
