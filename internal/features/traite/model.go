package traite

import (
	"time"

	"go-rental/internal/common/crud"
	"go-rental/internal/rule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Traite is one loan installment due on a financed vehicle.
type Traite struct {
	crud.Model `bson:",inline"`

	VehicleID   string  `json:"vehicle_id" bson:"vehicle_id" form:"vehicle_id" rule:"required"`
	Lender      string  `json:"lender" bson:"lender" form:"lender" rule:"notblank"`
	Amount      float64 `json:"amount" bson:"amount" form:"amount" rule:"min=1"`
	DueDate     string  `json:"due_date" bson:"due_date" form:"due_date" rule:"required"`
	Paid        bool    `json:"paid" bson:"paid" form:"paid"`
	PaymentDate string  `json:"payment_date" bson:"payment_date" form:"payment_date"`
}

func (t *Traite) Validate(_ time.Time) rule.ValidationErrors {
	errs := rule.ValidationErrors{}

	if _, err := primitive.ObjectIDFromHex(t.VehicleID); t.VehicleID != "" && err != nil {
		errs["vehicle_id"] = "must be a valid vehicle ID"
	}
	if _, ok := rule.ParseDate(t.DueDate); !ok && t.DueDate != "" {
		errs["due_date"] = "must be a valid date"
	}

	if t.Paid {
		if t.PaymentDate == "" {
			errs["payment_date"] = "is required when the traite is paid"
		} else if _, ok := rule.ParseDate(t.PaymentDate); !ok {
			errs["payment_date"] = "must be a valid date"
		}
	} else {
		// An unpaid traite carries no payment date
		t.PaymentDate = ""
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
