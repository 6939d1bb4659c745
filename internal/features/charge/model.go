package charge

import (
	"time"

	"go-rental/internal/common/crud"
	"go-rental/internal/rule"
)

type ChargeType string

const (
	TypeFuel    ChargeType = "fuel"
	TypeTax     ChargeType = "tax"
	TypeWash    ChargeType = "wash"
	TypeParking ChargeType = "parking"
	TypeOther   ChargeType = "other"
)

// Charge is a miscellaneous expense, not necessarily tied to one vehicle.
type Charge struct {
	crud.Model `bson:",inline"`

	Label  string     `json:"label" bson:"label" form:"label" rule:"notblank"`
	Type   ChargeType `json:"type" bson:"type" form:"type" rule:"omitempty,oneof=fuel tax wash parking other"`
	Amount float64    `json:"amount" bson:"amount" form:"amount" rule:"min=0"`
	Date   string     `json:"date" bson:"date" form:"date" rule:"required"`
	Notes  string     `json:"notes" bson:"notes" form:"notes" rule:"optblank"`
}

func (c *Charge) Validate(_ time.Time) rule.ValidationErrors {
	errs := rule.ValidationErrors{}

	if _, ok := rule.ParseDate(c.Date); !ok && c.Date != "" {
		errs["date"] = "must be a valid date"
	}
	if c.Type == "" {
		c.Type = TypeOther
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
