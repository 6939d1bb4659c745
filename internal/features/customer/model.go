package customer

import (
	"time"

	"go-rental/internal/common/crud"
	"go-rental/internal/rule"
)

// Customer is a rental customer with a driving permit.
type Customer struct {
	crud.Model `bson:",inline"`

	Cin          string `json:"cin" bson:"cin" form:"cin" rule:"notblank"`
	FirstName    string `json:"first_name" bson:"first_name" form:"first_name" rule:"notblank"`
	LastName     string `json:"last_name" bson:"last_name" form:"last_name" rule:"notblank"`
	BirthDate    string `json:"birth_date" bson:"birth_date" form:"birth_date" rule:"required"`
	Age          int    `json:"age" bson:"age" form:"-"` // derived from birth_date
	PermitNumber string `json:"permit_number" bson:"permit_number" form:"permit_number" rule:"notblank"`
	PermitDate   string `json:"permit_date" bson:"permit_date" form:"permit_date" rule:"required"`
	Phone        string `json:"phone" bson:"phone" form:"phone" rule:"notblank"`
	Email        string `json:"email" bson:"email" form:"email" rule:"omitempty,email"`
	Address      string `json:"address" bson:"address" form:"address" rule:"optblank"`
}

// Validate recomputes the age and checks the date-relative permit rule.
func (c *Customer) Validate(now time.Time) rule.ValidationErrors {
	errs := rule.ValidationErrors{}

	if birth, ok := rule.ParseDate(c.BirthDate); ok {
		c.Age = rule.AgeAt(birth, now)
		if c.Age < 18 {
			errs["birth_date"] = "customer must be at least 18 years old"
		}
	} else if c.BirthDate != "" {
		errs["birth_date"] = "must be a valid date"
	}

	if issued, ok := rule.ParseDate(c.PermitDate); ok {
		if !rule.DateNotWithinLast(issued, 2, now) {
			errs["permit_date"] = "permit must have been issued more than 2 years ago"
		}
	} else if c.PermitDate != "" {
		errs["permit_date"] = "must be a valid date"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
