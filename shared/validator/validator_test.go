package validator_test

import (
	"strings"
	"testing"

	"inn/shared/failure"
	"inn/shared/validator"
)

type bookingRequest struct {
	CustomerID int64  `validate:"required,gte=1"             json:"customer_id"`
	StartDate  string `validate:"required,datetime=2006-01-02" json:"start_date"`
	EndDate    string `validate:"required,datetime=2006-01-02" json:"end_date"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingRequest
		expectError bool
	}{
		{
			name: "valid request",
			data: &bookingRequest{
				CustomerID: 7,
				StartDate:  "2026-09-10",
				EndDate:    "2026-09-12",
			},
			expectError: false,
		},
		{
			name: "missing customer",
			data: &bookingRequest{
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
			},
			expectError: true,
		},
		{
			name: "malformed start date",
			data: &bookingRequest{
				CustomerID: 7,
				StartDate:  "10/09/2026",
				EndDate:    "2026-09-12",
			},
			expectError: true,
		},
		{
			name: "missing end date",
			data: &bookingRequest{
				CustomerID: 7,
				StartDate:  "2026-09-10",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if tt.expectError && err != nil && !failure.IsBadRequest(err) {
				t.Errorf("expected bad request failure, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"customer_id": 3, "start_date": "2026-09-10", "end_date": "2026-09-11"}`)

	req := bookingRequest{}
	if err := validator.Validate(body, &req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if req.CustomerID != 3 {
		t.Errorf("expected customer id 3, got %d", req.CustomerID)
	}
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"customer_id": `)

	req := bookingRequest{}
	err := validator.Validate(body, &req)

	if err == nil {
		t.Fatal("expected decode error, got nil")
	}

	if !failure.IsBadRequest(err) {
		t.Errorf("expected bad request failure, got %v", err)
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2026-09-10", "datetime=2006-01-02"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("not-a-date", "datetime=2006-01-02"); err == nil {
		t.Error("expected error for malformed date")
	}
}
