package crud

import (
	"context"
	"testing"
	"time"

	"go-rental/internal/rule"

	"go.uber.org/zap"
)

type testEntity struct {
	Model `bson:",inline"`

	Cin    string  `json:"cin" form:"cin" rule:"notblank"`
	Amount float64 `json:"amount" form:"amount" rule:"min=1"`
}

func (e *testEntity) Validate(_ time.Time) rule.ValidationErrors {
	if e.Cin == "blocked" {
		return rule.ValidationErrors{"cin": "is not allowed"}
	}
	return nil
}

func newTestService() *Service[*testEntity] {
	// Repo, Docs and Audit stay nil: a validation failure must return
	// before any of them is touched.
	return &Service[*testEntity]{
		Schema: Schema{Module: "tests", Path: "/api/tests", Collection: "tests"},
		Logger: zap.NewNop(),
	}
}

func TestCreateBlockedByValidation(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name      string
		entity    *testEntity
		wantField string
	}{
		{"Whitespace Only Cin", &testEntity{Cin: "   ", Amount: 10}, "cin"},
		{"Empty Cin", &testEntity{Amount: 10}, "cin"},
		{"Amount Below Floor", &testEntity{Cin: "AB123", Amount: 0}, "amount"},
		{"Cross Field Rule", &testEntity{Cin: "blocked", Amount: 10}, "cin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := s.Create(context.Background(), tt.entity, nil)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if errs == nil {
				t.Fatal("Create() should have returned validation errors")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateMergesTagAndCrossFieldErrors(t *testing.T) {
	s := newTestService()

	errs := s.validate(&testEntity{Cin: "  ", Amount: 0}, time.Now())
	if len(errs) != 2 {
		t.Fatalf("validate() = %v, want errors on cin and amount", errs)
	}

	if errs := s.validate(&testEntity{Cin: "AB123", Amount: 5}, time.Now()); errs != nil {
		t.Errorf("validate() = %v, want nil for a valid entity", errs)
	}
}

func TestModelStamp(t *testing.T) {
	now := time.Now()
	created := now.AddDate(0, -1, 0)

	var m Model
	m.Stamp(time.Time{}, now)
	if !m.CreatedAt.Equal(now) || !m.UpdatedAt.Equal(now) {
		t.Errorf("new record: CreatedAt=%v UpdatedAt=%v, want both %v", m.CreatedAt, m.UpdatedAt, now)
	}

	m.Stamp(created, now)
	if !m.CreatedAt.Equal(created) {
		t.Errorf("update must preserve CreatedAt, got %v", m.CreatedAt)
	}
	if !m.UpdatedAt.Equal(now) {
		t.Errorf("update must refresh UpdatedAt, got %v", m.UpdatedAt)
	}
}
