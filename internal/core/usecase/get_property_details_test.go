package usecase

import (
	"context"
	"errors"
	"palais-immobilier-api/internal/adapters/memstore"
	"palais-immobilier-api/internal/core/domain"
	"testing"
)

func detailsFixture() *GetPropertyDetailsUseCase {
	catalog := memstore.NewPropertyCatalog([]domain.Property{
		{ID: "pub", Approved: true, AgentID: "2"},
		{ID: "draft", Approved: false, AgentID: "2"},
	})
	return NewGetPropertyDetailsUseCase(catalog)
}

func TestGetPropertyDetailsApprovedIsPublic(t *testing.T) {
	uc := detailsFixture()

	property, err := uc.Execute(context.Background(), "pub", nil)
	if err != nil {
		t.Fatal(err)
	}
	if property.ID != "pub" {
		t.Fatalf("id = %q", property.ID)
	}
}

func TestGetPropertyDetailsUnapprovedVisibility(t *testing.T) {
	uc := detailsFixture()

	cases := []struct {
		name    string
		viewer  *domain.Claims
		visible bool
	}{
		{"anonymous", nil, false},
		{"regular user", &domain.Claims{UserID: "3", Role: domain.RoleUser}, false},
		{"other agent", &domain.Claims{UserID: "9", Role: domain.RoleAgent}, false},
		{"owning agent", &domain.Claims{UserID: "2", Role: domain.RoleAgent}, true},
		{"admin", &domain.Claims{UserID: "1", Role: domain.RoleAdmin}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			property, err := uc.Execute(context.Background(), "draft", tc.viewer)
			if tc.visible {
				if err != nil {
					t.Fatal(err)
				}
				if property.ID != "draft" {
					t.Fatalf("id = %q", property.ID)
				}
				return
			}
			// Hidden listings answer exactly like missing ones.
			if !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestGetPropertyDetailsUnknownID(t *testing.T) {
	uc := detailsFixture()

	if _, err := uc.Execute(context.Background(), "missing", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
