package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/domain/mel"
	"hsj_mel/internal/usecase/interfaces"
)

var (
	ErrMelRuleNotFound        = errors.New("mel rule not found")
	ErrMelRuleAlreadyExists   = errors.New("mel rule already exists")
	ErrInvalidSectorID        = errors.New("invalid sector_id")
	ErrInvalidSectorName      = errors.New("invalid sector_name")
	ErrInvalidGroupKey        = errors.New("invalid equipment_group_key")
	ErrInvalidMinimumQuantity = errors.New("invalid minimum_quantity")
	ErrInvalidDefinition      = errors.New("invalid group definition")
)

// MelRuleInput is the command for creating a rule.
type MelRuleInput struct {
	SectorID        string
	SectorName      string
	GroupKey        string
	GroupName       string
	Definition      string
	MinimumQuantity int
	Justification   string
}

// MelRuleUpdateInput carries partial rule updates; nil fields keep the
// stored value.
type MelRuleUpdateInput struct {
	SectorName      *string
	GroupName       *string
	Definition      *string
	MinimumQuantity *int
	Active          *bool
	Justification   *string
}

// IMelRuleUseCase exposes administrator CRUD over sector MEL rules.

type IMelRuleUseCase interface {
	Create(ctx context.Context, input MelRuleInput) (entities.SectorMelRule, error)
	GetByKey(ctx context.Context, sectorID, groupKey string) (entities.SectorMelRule, error)
	List(ctx context.Context, activeOnly bool) ([]entities.SectorMelRule, error)
	Update(ctx context.Context, sectorID, groupKey string, input MelRuleUpdateInput) (entities.SectorMelRule, error)
	Delete(ctx context.Context, sectorID, groupKey string) error
}

type MelRuleUseCase struct {
	repo    interfaces.IMelRuleRepository
	catalog []entities.EquipmentGroup
	cache   mel.MatchCache
}

var _ IMelRuleUseCase = (*MelRuleUseCase)(nil)

// NewMelRuleUseCase creates the rule usecase. cache may be nil; when
// present it is invalidated on every rule write so sector matching never
// serves decisions taken against renamed sectors.
func NewMelRuleUseCase(repo interfaces.IMelRuleRepository, catalog []entities.EquipmentGroup, cache mel.MatchCache) *MelRuleUseCase {
	return &MelRuleUseCase{repo: repo, catalog: catalog, cache: cache}
}

func (u *MelRuleUseCase) Create(ctx context.Context, input MelRuleInput) (entities.SectorMelRule, error) {
	sectorID := strings.TrimSpace(input.SectorID)
	if sectorID == "" {
		return entities.SectorMelRule{}, ErrInvalidSectorID
	}
	sectorName := strings.TrimSpace(input.SectorName)
	if sectorName == "" {
		return entities.SectorMelRule{}, ErrInvalidSectorName
	}
	groupKey := strings.TrimSpace(input.GroupKey)
	if groupKey == "" {
		return entities.SectorMelRule{}, ErrInvalidGroupKey
	}
	if input.MinimumQuantity < 0 {
		return entities.SectorMelRule{}, ErrInvalidMinimumQuantity
	}

	definition := strings.TrimSpace(input.Definition)
	def, err := entities.ParseGroupDefinition(definition)
	if err != nil {
		return entities.SectorMelRule{}, ErrInvalidDefinition
	}

	groupName := strings.TrimSpace(input.GroupName)
	group, inCatalog := entities.FindGroup(u.catalog, groupKey)
	if groupName == "" && inCatalog {
		groupName = group.Name
	}
	// A key outside the catalog is only meaningful when the rule brings its
	// own membership (custom ID set or pattern override).
	if !inCatalog && !def.IsCustom() && len(def.Patterns) == 0 {
		return entities.SectorMelRule{}, ErrInvalidGroupKey
	}

	// Enforce: 1 rule per (sector, group).
	if existing, err := u.repo.GetByKey(ctx, sectorID, groupKey); err != nil {
		return entities.SectorMelRule{}, err
	} else if existing.SectorID != "" {
		return entities.SectorMelRule{}, ErrMelRuleAlreadyExists
	}

	now := time.Now().UTC()
	r := entities.SectorMelRule{
		SectorID:        sectorID,
		SectorName:      sectorName,
		GroupKey:        groupKey,
		GroupName:       groupName,
		Definition:      definition,
		MinimumQuantity: input.MinimumQuantity,
		Active:          true,
		Justification:   strings.TrimSpace(input.Justification),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.SectorMelRule{}, err
	}
	u.invalidateCache()
	return created, nil
}

func (u *MelRuleUseCase) GetByKey(ctx context.Context, sectorID, groupKey string) (entities.SectorMelRule, error) {
	sectorID = strings.TrimSpace(sectorID)
	if sectorID == "" {
		return entities.SectorMelRule{}, ErrInvalidSectorID
	}
	groupKey = strings.TrimSpace(groupKey)
	if groupKey == "" {
		return entities.SectorMelRule{}, ErrInvalidGroupKey
	}

	r, err := u.repo.GetByKey(ctx, sectorID, groupKey)
	if err != nil {
		return entities.SectorMelRule{}, err
	}
	if r.SectorID == "" {
		return entities.SectorMelRule{}, ErrMelRuleNotFound
	}
	return r, nil
}

func (u *MelRuleUseCase) List(ctx context.Context, activeOnly bool) ([]entities.SectorMelRule, error) {
	if activeOnly {
		return u.repo.ListActive(ctx)
	}
	return u.repo.List(ctx)
}

func (u *MelRuleUseCase) Update(ctx context.Context, sectorID, groupKey string, input MelRuleUpdateInput) (entities.SectorMelRule, error) {
	current, err := u.GetByKey(ctx, sectorID, groupKey)
	if err != nil {
		return entities.SectorMelRule{}, err
	}

	if input.SectorName != nil {
		name := strings.TrimSpace(*input.SectorName)
		if name == "" {
			return entities.SectorMelRule{}, ErrInvalidSectorName
		}
		current.SectorName = name
	}
	if input.GroupName != nil {
		current.GroupName = strings.TrimSpace(*input.GroupName)
	}
	if input.Definition != nil {
		definition := strings.TrimSpace(*input.Definition)
		if _, err := entities.ParseGroupDefinition(definition); err != nil {
			return entities.SectorMelRule{}, ErrInvalidDefinition
		}
		current.Definition = definition
	}
	if input.MinimumQuantity != nil {
		if *input.MinimumQuantity < 0 {
			return entities.SectorMelRule{}, ErrInvalidMinimumQuantity
		}
		current.MinimumQuantity = *input.MinimumQuantity
	}
	if input.Active != nil {
		current.Active = *input.Active
	}
	if input.Justification != nil {
		current.Justification = strings.TrimSpace(*input.Justification)
	}
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.SectorMelRule{}, err
	}
	if updated.SectorID == "" {
		return entities.SectorMelRule{}, ErrMelRuleNotFound
	}
	u.invalidateCache()
	return updated, nil
}

// Delete removes the rule. The rule's active alert, if any, is resolved by
// the orphan sweep on the next reconciliation pass.
func (u *MelRuleUseCase) Delete(ctx context.Context, sectorID, groupKey string) error {
	if _, err := u.GetByKey(ctx, sectorID, groupKey); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(sectorID), strings.TrimSpace(groupKey)); err != nil {
		return err
	}
	u.invalidateCache()
	return nil
}

func (u *MelRuleUseCase) invalidateCache() {
	if u.cache != nil {
		u.cache.Invalidate()
	}
}
