package usecase

import (
	"context"
	"errors"
	"testing"

	"hsj_mel/internal/domain/entities"
	mock_interfaces "hsj_mel/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type countingCache struct {
	invalidations int
}

func (c *countingCache) Get(string) (bool, bool) { return false, false }
func (c *countingCache) Set(string, bool)        {}
func (c *countingCache) Invalidate()             { c.invalidations++ }

func validRuleInput() MelRuleInput {
	return MelRuleInput{
		SectorID:        "uti-1",
		SectorName:      "UTI 1",
		GroupKey:        "ventilador-pulmonar",
		MinimumQuantity: 2,
		Justification:   "Protocolo assistencial",
	}
}

func TestMelRuleUseCase_Create(t *testing.T) {
	catalog := entities.BuiltinGroups()

	t.Run("invalid sector id", func(t *testing.T) {
		uc := NewMelRuleUseCase(nil, catalog, nil)
		input := validRuleInput()
		input.SectorID = "  "
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidSectorID) {
			t.Fatalf("expected ErrInvalidSectorID, got %v", err)
		}
	})

	t.Run("invalid sector name", func(t *testing.T) {
		uc := NewMelRuleUseCase(nil, catalog, nil)
		input := validRuleInput()
		input.SectorName = ""
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidSectorName) {
			t.Fatalf("expected ErrInvalidSectorName, got %v", err)
		}
	})

	t.Run("invalid group key", func(t *testing.T) {
		uc := NewMelRuleUseCase(nil, catalog, nil)
		input := validRuleInput()
		input.GroupKey = ""
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidGroupKey) {
			t.Fatalf("expected ErrInvalidGroupKey, got %v", err)
		}
	})

	t.Run("negative minimum", func(t *testing.T) {
		uc := NewMelRuleUseCase(nil, catalog, nil)
		input := validRuleInput()
		input.MinimumQuantity = -1
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidMinimumQuantity) {
			t.Fatalf("expected ErrInvalidMinimumQuantity, got %v", err)
		}
	})

	t.Run("malformed definition", func(t *testing.T) {
		uc := NewMelRuleUseCase(nil, catalog, nil)
		input := validRuleInput()
		input.Definition = `{"type":"custom"}`
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidDefinition) {
			t.Fatalf("expected ErrInvalidDefinition, got %v", err)
		}
	})

	t.Run("unknown key without own membership", func(t *testing.T) {
		uc := NewMelRuleUseCase(nil, catalog, nil)
		input := validRuleInput()
		input.GroupKey = "tomografo"
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidGroupKey) {
			t.Fatalf("expected ErrInvalidGroupKey, got %v", err)
		}
	})

	t.Run("unknown key with custom set is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		uc := NewMelRuleUseCase(repo, catalog, nil)

		input := validRuleInput()
		input.GroupKey = "equipos-criticos"
		input.GroupName = "Equipos Críticos"
		input.Definition = `{"type":"custom","equipmentIds":[1,2]}`

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "equipos-criticos").Return(entities.SectorMelRule{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SectorMelRule{})).DoAndReturn(
			func(_ context.Context, r entities.SectorMelRule) (entities.SectorMelRule, error) {
				return r, nil
			},
		)

		r, err := uc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.GroupName != "Equipos Críticos" {
			t.Fatalf("unexpected group name: %q", r.GroupName)
		}
	})

	t.Run("duplicate rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		uc := NewMelRuleUseCase(repo, catalog, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").
			Return(entities.SectorMelRule{SectorID: "uti-1", GroupKey: "ventilador-pulmonar"}, nil)

		_, err := uc.Create(context.Background(), validRuleInput())
		if !errors.Is(err, ErrMelRuleAlreadyExists) {
			t.Fatalf("expected ErrMelRuleAlreadyExists, got %v", err)
		}
	})

	t.Run("create success resolves catalog name and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		cache := &countingCache{}
		uc := NewMelRuleUseCase(repo, catalog, cache)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(entities.SectorMelRule{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SectorMelRule{})).DoAndReturn(
			func(_ context.Context, r entities.SectorMelRule) (entities.SectorMelRule, error) {
				if !r.Active {
					t.Fatalf("new rules must default to active")
				}
				if r.GroupName != "Ventilador Pulmonar" {
					t.Fatalf("expected catalog name, got %q", r.GroupName)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		r, err := uc.Create(context.Background(), validRuleInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Key() != "uti-1#ventilador-pulmonar" {
			t.Fatalf("unexpected rule key: %q", r.Key())
		}
		if cache.invalidations != 1 {
			t.Fatalf("expected cache invalidation, got %d", cache.invalidations)
		}
	})
}

func TestMelRuleUseCase_GetByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
	uc := NewMelRuleUseCase(repo, entities.BuiltinGroups(), nil)

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "autoclave").Return(entities.SectorMelRule{}, nil)
		_, err := uc.GetByKey(context.Background(), "uti-1", "autoclave")
		if !errors.Is(err, ErrMelRuleNotFound) {
			t.Fatalf("expected ErrMelRuleNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(ventiladorRule(2), nil)
		r, err := uc.GetByKey(context.Background(), " uti-1 ", "ventilador-pulmonar")
		if err != nil || r.SectorID != "uti-1" {
			t.Fatalf("unexpected result: %+v %v", r, err)
		}
	})
}

func TestMelRuleUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
	uc := NewMelRuleUseCase(repo, entities.BuiltinGroups(), nil)

	t.Run("all", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return([]entities.SectorMelRule{ventiladorRule(1)}, nil)
		rules, err := uc.List(context.Background(), false)
		if err != nil || len(rules) != 1 {
			t.Fatalf("unexpected result: %v %v", rules, err)
		}
	})

	t.Run("active only", func(t *testing.T) {
		repo.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
		if _, err := uc.List(context.Background(), true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMelRuleUseCase_Update(t *testing.T) {
	catalog := entities.BuiltinGroups()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		uc := NewMelRuleUseCase(repo, catalog, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(entities.SectorMelRule{}, nil)

		_, err := uc.Update(context.Background(), "uti-1", "ventilador-pulmonar", MelRuleUpdateInput{})
		if !errors.Is(err, ErrMelRuleNotFound) {
			t.Fatalf("expected ErrMelRuleNotFound, got %v", err)
		}
	})

	t.Run("negative minimum rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		uc := NewMelRuleUseCase(repo, catalog, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(ventiladorRule(2), nil)

		minimum := -3
		_, err := uc.Update(context.Background(), "uti-1", "ventilador-pulmonar", MelRuleUpdateInput{MinimumQuantity: &minimum})
		if !errors.Is(err, ErrInvalidMinimumQuantity) {
			t.Fatalf("expected ErrInvalidMinimumQuantity, got %v", err)
		}
	})

	t.Run("malformed definition rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		uc := NewMelRuleUseCase(repo, catalog, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(ventiladorRule(2), nil)

		definition := `{"type":"custom","equipmentIds":[]}`
		_, err := uc.Update(context.Background(), "uti-1", "ventilador-pulmonar", MelRuleUpdateInput{Definition: &definition})
		if !errors.Is(err, ErrInvalidDefinition) {
			t.Fatalf("expected ErrInvalidDefinition, got %v", err)
		}
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		cache := &countingCache{}
		uc := NewMelRuleUseCase(repo, catalog, cache)

		current := ventiladorRule(2)
		current.Justification = "Protocolo"
		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.SectorMelRule{})).DoAndReturn(
			func(_ context.Context, r entities.SectorMelRule) (entities.SectorMelRule, error) {
				if r.MinimumQuantity != 4 {
					t.Fatalf("expected minimum 4, got %d", r.MinimumQuantity)
				}
				if r.SectorName != "UTI 1" || r.Justification != "Protocolo" {
					t.Fatalf("untouched fields changed: %+v", r)
				}
				return r, nil
			},
		)

		minimum := 4
		r, err := uc.Update(context.Background(), "uti-1", "ventilador-pulmonar", MelRuleUpdateInput{MinimumQuantity: &minimum})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.MinimumQuantity != 4 {
			t.Fatalf("unexpected rule: %+v", r)
		}
		if cache.invalidations != 1 {
			t.Fatalf("expected cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("deactivation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		uc := NewMelRuleUseCase(repo, catalog, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(ventiladorRule(2), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.SectorMelRule{})).DoAndReturn(
			func(_ context.Context, r entities.SectorMelRule) (entities.SectorMelRule, error) {
				if r.Active {
					t.Fatalf("expected inactive rule")
				}
				return r, nil
			},
		)

		active := false
		if _, err := uc.Update(context.Background(), "uti-1", "ventilador-pulmonar", MelRuleUpdateInput{Active: &active}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMelRuleUseCase_Delete(t *testing.T) {
	catalog := entities.BuiltinGroups()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		uc := NewMelRuleUseCase(repo, catalog, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(entities.SectorMelRule{}, nil)

		err := uc.Delete(context.Background(), "uti-1", "ventilador-pulmonar")
		if !errors.Is(err, ErrMelRuleNotFound) {
			t.Fatalf("expected ErrMelRuleNotFound, got %v", err)
		}
	})

	t.Run("delete success invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMelRuleRepository(ctrl)
		cache := &countingCache{}
		uc := NewMelRuleUseCase(repo, catalog, cache)

		repo.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(ventiladorRule(2), nil)
		repo.EXPECT().Delete(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(nil)

		if err := uc.Delete(context.Background(), "uti-1", "ventilador-pulmonar"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.invalidations != 1 {
			t.Fatalf("expected cache invalidation, got %d", cache.invalidations)
		}
	})
}
