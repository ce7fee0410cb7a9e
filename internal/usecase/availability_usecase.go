package usecase

import (
	"context"
	"log"
	"strings"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/domain/mel"
	"hsj_mel/internal/usecase/interfaces"
)

// AvailabilityReport answers "how many units of this group are available in
// this sector right now, against which minimum".
//
// HasData is false when the group resolved to zero matched equipment; the
// counts are then all zero and the reconciler treats minimum > 0 as a
// violation.
type AvailabilityReport struct {
	SectorID     string
	SectorName   string
	GroupKey     string
	GroupName    string
	Total        int
	Unavailable  int
	Available    int
	Minimum      int
	InAlert      bool
	HasData      bool
	OrdersSource entities.ServiceOrderSource
}

// SectorGroupReport is one row of the per-sector group listing.
type SectorGroupReport struct {
	GroupKey       string
	GroupName      string
	EquipmentCount int
	Unavailable    int
	Available      int
	Minimum        int
	HasRule        bool
	InAlert        bool
}

// IAvailabilityUseCase exposes the read side of the evaluation engine.

type IAvailabilityUseCase interface {
	ComputeAvailability(ctx context.Context, sectorID, groupKey string) (AvailabilityReport, error)
	ListGroupsForSector(ctx context.Context, sectorID string) ([]SectorGroupReport, error)
}

type AvailabilityUseCase struct {
	ruleRepo  interfaces.IMelRuleRepository
	alertRepo interfaces.IMelAlertRepository
	provider  interfaces.IEquipmentProvider
	calc      *mel.Calculator
	catalog   []entities.EquipmentGroup
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(
	ruleRepo interfaces.IMelRuleRepository,
	alertRepo interfaces.IMelAlertRepository,
	provider interfaces.IEquipmentProvider,
	calc *mel.Calculator,
	catalog []entities.EquipmentGroup,
) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		ruleRepo:  ruleRepo,
		alertRepo: alertRepo,
		provider:  provider,
		calc:      calc,
		catalog:   catalog,
	}
}

func (u *AvailabilityUseCase) ComputeAvailability(ctx context.Context, sectorID, groupKey string) (AvailabilityReport, error) {
	sectorID = strings.TrimSpace(sectorID)
	if sectorID == "" {
		return AvailabilityReport{}, ErrInvalidSectorID
	}
	groupKey = strings.TrimSpace(groupKey)
	if groupKey == "" {
		return AvailabilityReport{}, ErrInvalidGroupKey
	}

	rule, err := u.ruleRepo.GetByKey(ctx, sectorID, groupKey)
	if err != nil {
		return AvailabilityReport{}, err
	}
	if rule.SectorID == "" {
		return AvailabilityReport{}, ErrMelRuleNotFound
	}

	snap, err := loadSnapshot(ctx, u.provider)
	if err != nil {
		return AvailabilityReport{}, err
	}

	avail, hasData := u.calc.Compute(rule, snap.Equipment, snap.ServiceOrders)

	report := AvailabilityReport{
		SectorID:     rule.SectorID,
		SectorName:   rule.SectorName,
		GroupKey:     rule.GroupKey,
		GroupName:    rule.GroupName,
		Total:        avail.Total,
		Unavailable:  avail.Unavailable,
		Available:    avail.Available,
		Minimum:      rule.MinimumQuantity,
		HasData:      hasData,
		OrdersSource: snap.OrdersSource,
	}

	alert, err := u.alertRepo.GetActiveByRuleKey(ctx, rule.Key())
	if err != nil {
		// The alert lookup only enriches the report; a store hiccup must
		// not hide the computed counts.
		log.Printf("[mel][availability] active alert lookup failed rule_key=%s err=%v", rule.Key(), err)
	} else {
		report.InAlert = alert.ID != ""
	}

	return report, nil
}

// ListGroupsForSector evaluates every catalog group for one sector,
// enriched with the sector's rules and open alerts.
//
// The sector display name is taken from the sector's rules when present;
// otherwise the identifier itself is matched against the inventory (the
// admin UI uses the upstream sector name as identifier for sectors that
// have no rule yet).
func (u *AvailabilityUseCase) ListGroupsForSector(ctx context.Context, sectorID string) ([]SectorGroupReport, error) {
	sectorID = strings.TrimSpace(sectorID)
	if sectorID == "" {
		return nil, ErrInvalidSectorID
	}

	rules, err := u.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sectorName := sectorID
	rulesByGroup := make(map[string]entities.SectorMelRule)
	for _, r := range rules {
		if r.SectorID != sectorID {
			continue
		}
		rulesByGroup[r.GroupKey] = r
		if r.SectorName != "" {
			sectorName = r.SectorName
		}
	}

	snap, err := loadSnapshot(ctx, u.provider)
	if err != nil {
		return nil, err
	}

	activeAlerts := make(map[string]bool)
	alerts, err := u.alertRepo.ListActive(ctx)
	if err != nil {
		log.Printf("[mel][availability] active alert listing failed sector_id=%s err=%v", sectorID, err)
	} else {
		for _, a := range alerts {
			activeAlerts[a.RuleKey] = true
		}
	}

	reports := make([]SectorGroupReport, 0, len(u.catalog))
	for _, g := range u.catalog {
		rule, hasRule := rulesByGroup[g.Key]
		if !hasRule {
			rule = entities.SectorMelRule{
				SectorID:   sectorID,
				SectorName: sectorName,
				GroupKey:   g.Key,
				GroupName:  g.Name,
			}
		}

		avail, _ := u.calc.Compute(rule, snap.Equipment, snap.ServiceOrders)
		reports = append(reports, SectorGroupReport{
			GroupKey:       g.Key,
			GroupName:      g.Name,
			EquipmentCount: avail.Total,
			Unavailable:    avail.Unavailable,
			Available:      avail.Available,
			Minimum:        rule.MinimumQuantity,
			HasRule:        hasRule,
			InAlert:        hasRule && activeAlerts[rule.Key()],
		})
	}
	return reports, nil
}
