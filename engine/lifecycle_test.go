package engine

import (
	"errors"
	"testing"

	"smart-order/models"
)

func TestAdvanceStatus(t *testing.T) {
	tests := []struct {
		name    string
		current models.OrderStatus
		want    models.OrderStatus
		wantErr bool
	}{
		{name: "pending starts preparing", current: models.StatusPending, want: models.StatusPreparing},
		{name: "preparing becomes ready", current: models.StatusPreparing, want: models.StatusReady},
		{name: "ready gets served", current: models.StatusReady, want: models.StatusServed},
		{name: "served closes", current: models.StatusServed, want: models.StatusClosed},
		{name: "closed is terminal", current: models.StatusClosed, wantErr: true},
		{name: "unknown status", current: models.OrderStatus("Cancelled"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdvanceStatus(tt.current)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AdvanceStatus(%q) error = %v, wantErr %v", tt.current, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("AdvanceStatus(%q) error = %v, want ErrInvalidTransition", tt.current, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("AdvanceStatus(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{name: "adjacent forward", from: models.StatusPending, to: models.StatusPreparing, wantErr: false},
		{name: "skip a state", from: models.StatusPending, to: models.StatusReady, wantErr: true},
		{name: "backward", from: models.StatusReady, to: models.StatusPreparing, wantErr: true},
		{name: "same state", from: models.StatusPreparing, to: models.StatusPreparing, wantErr: true},
		{name: "reopen closed", from: models.StatusClosed, to: models.StatusPending, wantErr: true},
		{name: "served to closed", from: models.StatusServed, to: models.StatusClosed, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTransition(%q, %q) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}
