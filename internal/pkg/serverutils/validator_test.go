package serverutils

import (
	"strings"
	"testing"

	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/pkg/apperrors"

	"github.com/google/uuid"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       interface{}
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid register request",
			req:     dto.RegisterRequest{Username: "alice", Password: "password123"},
			wantErr: false,
		},
		{
			name:      "short username",
			req:       dto.RegisterRequest{Username: "al", Password: "password123"},
			wantErr:   true,
			wantField: "username",
		},
		{
			name:      "short password",
			req:       dto.RegisterRequest{Username: "alice", Password: "short"},
			wantErr:   true,
			wantField: "password",
		},
		{
			name:      "missing note title",
			req:       dto.CreateNoteRequest{Content: "body"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "bad share permission",
			req:       dto.ShareNoteRequest{UserId: uuid.New(), Permission: "superuser"},
			wantErr:   true,
			wantField: "permission",
		},
		{
			name:    "share without permission defaults later",
			req:     dto.ShareNoteRequest{UserId: uuid.New()},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateRequest() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("ValidateRequest() expected error, got nil")
			}
			appErr, ok := apperrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Status != 400 {
				t.Errorf("Status = %d, want 400", appErr.Status)
			}
			if tt.wantField != "" && !strings.Contains(appErr.Message, tt.wantField) {
				t.Errorf("Message %q should name field %q", appErr.Message, tt.wantField)
			}
		})
	}
}
