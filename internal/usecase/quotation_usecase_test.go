package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/domain/pricing"
	"rera_quotation/internal/usecase/interfaces"
	mock_interfaces "rera_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func usecaseCatalog() entities.Catalog {
	return entities.Catalog{
		DeveloperTypes: []entities.DeveloperType{
			{ID: "dt-builder", Name: "Builder", Multiplier: 1.2},
			{ID: "dt-agent", Name: "Agent", Multiplier: 1.0},
		},
		Regions: []entities.Region{
			{ID: "reg-mumbai", Name: "Mumbai", Multiplier: 1.1},
		},
		ServiceCategories: []entities.ServiceCategory{
			{ID: "cat-reg", Name: "Registration", ComplexityFactor: 1.0},
		},
		Services: []entities.Service{
			{ID: "svc-reg", Name: "RERA Registration", CategoryID: "cat-reg", BasePrice: 10000},
			{ID: "svc-compliance", Name: "Quarterly Compliance", CategoryID: "cat-reg", BasePrice: 100000},
		},
	}
}

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("missing developer type id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateQuotationCommand{})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewQuotationUseCase(nil, nil, catalog, nil)

		catalog.EXPECT().GetCatalog(gomock.Any()).Return(entities.Catalog{}, errors.New("db"))

		_, err := uc.Create(context.Background(), CreateQuotationCommand{
			Selection: PricingSelection{DeveloperTypeID: "dt-builder"},
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown developer type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewQuotationUseCase(nil, nil, catalog, nil)

		catalog.EXPECT().GetCatalog(gomock.Any()).Return(usecaseCatalog(), nil)

		_, err := uc.Create(context.Background(), CreateQuotationCommand{
			Selection: PricingSelection{DeveloperTypeID: "dt-missing", ServiceIDs: []string{"svc-reg"}},
		})
		if !errors.Is(err, ErrUnknownDeveloperType) {
			t.Fatalf("expected ErrUnknownDeveloperType, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, catalog, nil)

		catalog.EXPECT().GetCatalog(gomock.Any()).Return(usecaseCatalog(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ID == "" || !strings.HasPrefix(q.Number, "QT-") {
					t.Fatalf("missing id/number: %+v", q)
				}
				if q.Status != entities.QuotationStatusDraft {
					t.Fatalf("expected draft, got %s", q.Status)
				}
				if q.Pricing.Subtotal != 14520 {
					t.Fatalf("subtotal = %d, want 14520", q.Pricing.Subtotal)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), CreateQuotationCommand{
			ProjectName: " Skyline Towers ",
			ClientName:  "Acme Estates",
			Selection: PricingSelection{
				DeveloperTypeID: "dt-builder",
				RegionID:        "reg-mumbai",
				ServiceIDs:      []string{"svc-reg"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ProjectName != "Skyline Towers" {
			t.Fatalf("expected trimmed project name, got %q", q.ProjectName)
		}
		// 10000 x 1.2 x 1.1 = 13200... plus nothing else; builder/mumbai on svc-reg
		if q.Pricing.Services[0].CalculatedPrice != 13200 {
			t.Fatalf("calculated price = %d, want 13200", q.Pricing.Services[0].CalculatedPrice)
		}
	})
}

func TestQuotationUseCase_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
	uc := NewQuotationUseCase(nil, nil, catalog, nil)

	catalog.EXPECT().GetCatalog(gomock.Any()).Return(usecaseCatalog(), nil)

	p, err := uc.Preview(context.Background(), PricingSelection{
		DeveloperTypeID: "dt-agent",
		ServiceIDs:      []string{"svc-compliance"},
		Overrides:       map[string]pricing.PriceOverride{"svc-compliance": {ModifiedPrice: 75000, DiscountReason: "repeat client"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalDiscountPercentage != 25.0 {
		t.Fatalf("discount = %v, want 25", p.TotalDiscountPercentage)
	}
	if p.ApprovalLevel != entities.ApprovalLevelSeniorManager || !p.NeedsApproval {
		t.Fatalf("unexpected approval decision: %s", p.ApprovalLevel)
	}
}

func TestQuotationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, _, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, nil)

		_, _, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("success with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		approvals := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewQuotationUseCase(repo, approvals, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1"}, nil)
		approvals.EXPECT().ListByQuotationID(gomock.Any(), "q-1").
			Return([]entities.ApprovalRecord{{ID: "ap-1", QuotationID: "q-1"}}, nil)

		q, history, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" || len(history) != 1 {
			t.Fatalf("unexpected result: %+v %+v", q, history)
		}
	})
}

func TestQuotationUseCase_UpdateServicePrice(t *testing.T) {
	draft := func() entities.Quotation {
		return entities.Quotation{
			ID:     "q-1",
			Status: entities.QuotationStatusDraft,
			Pricing: entities.QuotationPricing{
				Services: []entities.ServicePricing{
					{ServiceID: "svc-compliance", ServiceName: "Quarterly Compliance", BasePrice: 100000, CalculatedPrice: 100000, FinalPrice: 100000},
				},
				Subtotal:     100000,
				FinalTotal:   100000,
				RoundedTotal: 100000,
			},
		}
	}

	t.Run("not editable once decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		q := draft()
		q.Status = entities.QuotationStatusApproved
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.UpdateServicePrice(context.Background(), "q-1", "svc-compliance", 90000, "")
		if !errors.Is(err, ErrQuotationNotEditable) {
			t.Fatalf("expected ErrQuotationNotEditable, got %v", err)
		}
		if !strings.Contains(err.Error(), "approved") {
			t.Fatalf("error should name the actual status: %v", err)
		}
	})

	t.Run("service not in quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draft(), nil)

		_, err := uc.UpdateServicePrice(context.Background(), "q-1", "svc-unknown", 90000, "")
		if !errors.Is(err, ErrServiceNotInQuotation) {
			t.Fatalf("expected ErrServiceNotInQuotation, got %v", err)
		}
	})

	t.Run("success recomputes aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draft(), nil)
		repo.EXPECT().UpdatePricing(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				line := q.Pricing.Services[0]
				if line.CalculatedPrice != 100000 {
					t.Fatalf("calculated price must not change, got %d", line.CalculatedPrice)
				}
				if line.FinalPrice != 75000 || line.DiscountPercentage != 25.0 {
					t.Fatalf("unexpected line: %+v", line)
				}
				if q.Pricing.ApprovalLevel != entities.ApprovalLevelSeniorManager {
					t.Fatalf("approval level = %s, want senior_manager", q.Pricing.ApprovalLevel)
				}
				return q, nil
			},
		)

		q, err := uc.UpdateServicePrice(context.Background(), "q-1", "svc-compliance", 75000, "negotiated")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Pricing.Subtotal != 75000 {
			t.Fatalf("subtotal = %d, want 75000", q.Pricing.Subtotal)
		}
	})
}

func TestQuotationUseCase_Submit(t *testing.T) {
	t.Run("needs approval goes pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		q := entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDraft,
			Pricing: entities.QuotationPricing{NeedsApproval: true, ApprovalLevel: entities.ApprovalLevelManager}}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuotationStatusDraft, entities.QuotationStatusPendingApproval, "", nil).
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusPendingApproval}, nil)

		res, err := uc.Submit(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusPendingApproval {
			t.Fatalf("status = %s", res.Status)
		}
	})

	t.Run("auto approved skips the queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		q := entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDraft,
			Pricing: entities.QuotationPricing{NeedsApproval: false}}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuotationStatusDraft, entities.QuotationStatusApproved, "", gomock.Not(gomock.Nil())).
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusApproved}, nil)

		res, err := uc.Submit(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusApproved {
			t.Fatalf("status = %s", res.Status)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusPendingApproval}, nil)

		_, err := uc.Submit(context.Background(), "q-1")
		if !errors.Is(err, ErrQuotationNotEditable) {
			t.Fatalf("expected ErrQuotationNotEditable, got %v", err)
		}
	})

	t.Run("concurrent submit loses conditional write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		q := entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDraft,
			Pricing: entities.QuotationPricing{NeedsApproval: true}}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuotationStatusDraft, entities.QuotationStatusPendingApproval, "", nil).
			Return(entities.Quotation{}, nil)

		_, err := uc.Submit(context.Background(), "q-1")
		if !errors.Is(err, ErrSubmitConflict) {
			t.Fatalf("expected ErrSubmitConflict, got %v", err)
		}
	})
}

func TestQuotationUseCase_RenderDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	approvals := mock_interfaces.NewMockIApprovalRepository(ctrl)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	uc := NewQuotationUseCase(repo, approvals, nil, renderer)

	q := entities.Quotation{ID: "q-1", Number: "QT-2026-ABC123"}
	history := []entities.ApprovalRecord{{ID: "ap-1"}}
	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
	approvals.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return(history, nil)
	renderer.EXPECT().RenderQuotation(gomock.Any(), q, history).Return([]byte("%PDF"), nil)

	doc, err := uc.RenderDocument(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(doc) != "%PDF" {
		t.Fatalf("unexpected document: %q", doc)
	}
}

func TestQuotationUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	uc := NewQuotationUseCase(repo, nil, nil, nil)

	filter := interfaces.QuotationFilter{Status: entities.QuotationStatusPendingApproval, MinDiscountPercentage: 10}
	repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Quotation{{ID: "q-1"}}, nil)

	res, err := uc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("expected 1 quotation, got %d", len(res))
	}
}
