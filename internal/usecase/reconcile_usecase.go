package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/domain/mel"
	"hsj_mel/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultReconcileWorkers = 4

// AlertAction is the decision of one state-machine step for one rule.
type AlertAction int

const (
	AlertActionNone AlertAction = iota
	AlertActionCreate
	AlertActionUpdate
	AlertActionResolve
)

// ReconcileSummary reports what a full sweep changed.
type ReconcileSummary struct {
	RulesEvaluated  int `json:"rules_evaluated"`
	AlertsCreated   int `json:"alerts_created"`
	AlertsUpdated   int `json:"alerts_updated"`
	AlertsResolved  int `json:"alerts_resolved"`
	OrphansResolved int `json:"orphans_resolved"`
	RulesFailed     int `json:"rules_failed"`
	Degraded        bool `json:"degraded"`
}

// IReconcileUseCase exposes the alert reconciliation sweep.

type IReconcileUseCase interface {
	ReconcileAll(ctx context.Context) (ReconcileSummary, error)
	ListAlerts(ctx context.Context, activeOnly bool) ([]entities.MelAlert, error)
}

type ReconcileUseCase struct {
	ruleRepo  interfaces.IMelRuleRepository
	alertRepo interfaces.IMelAlertRepository
	provider  interfaces.IEquipmentProvider
	calc      *mel.Calculator
	workers   int
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	ruleRepo interfaces.IMelRuleRepository,
	alertRepo interfaces.IMelAlertRepository,
	provider interfaces.IEquipmentProvider,
	calc *mel.Calculator,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		ruleRepo:  ruleRepo,
		alertRepo: alertRepo,
		provider:  provider,
		calc:      calc,
		workers:   defaultReconcileWorkers,
	}
}

// Transition is the alert state machine for one rule, taken in isolation.
//
// existing is nil when the rule has no open alert. hasData=false means the
// group resolved to zero equipment; with minimum > 0 that is a violation
// with available treated as 0.
//
// Rules with Active=false never violate, so their open alerts resolve.
// Resolution of *orphan* alerts (rule deleted) happens before this function
// is ever consulted, in the sweep itself.
func Transition(rule entities.SectorMelRule, avail mel.Availability, hasData bool, existing *entities.MelAlert) AlertAction {
	violating := rule.Active && avail.Available < rule.MinimumQuantity
	if !hasData {
		violating = rule.Active && rule.MinimumQuantity > 0
	}

	if existing == nil {
		if violating {
			return AlertActionCreate
		}
		return AlertActionNone
	}
	if violating {
		return AlertActionUpdate
	}
	return AlertActionResolve
}

// ReconcileAll runs a full sweep: orphan resolution first, then one state
// transition per known rule, over a single shared snapshot.
//
// Independent rules are evaluated in parallel; alert writes are naturally
// serialized per (sector, group) because each rule owns its key. A failure
// in one rule is logged and counted, never aborting the sweep. The sweep is
// idempotent: with unchanged inputs a second run performs no transitions
// other than count refreshes of still-violating alerts.
func (u *ReconcileUseCase) ReconcileAll(ctx context.Context) (ReconcileSummary, error) {
	log.Printf("[mel][reconcile] sweep start")

	// Rule store unavailability is configuration-tier: hard failure, no
	// partial state.
	rules, err := u.ruleRepo.List(ctx)
	if err != nil {
		log.Printf("[mel][reconcile] rule listing failed err=%v", err)
		return ReconcileSummary{}, err
	}

	var summary ReconcileSummary

	knownKeys := make(map[string]bool, len(rules))
	for _, r := range rules {
		knownKeys[r.Key()] = true
	}

	// Orphan sweep: an open alert whose rule no longer exists is
	// force-resolved regardless of its stored counts.
	openAlerts, err := u.alertRepo.ListActive(ctx)
	if err != nil {
		log.Printf("[mel][reconcile] active alert listing failed err=%v", err)
		return ReconcileSummary{}, err
	}
	now := time.Now().UTC()
	for _, a := range openAlerts {
		if knownKeys[a.RuleKey] {
			continue
		}
		if _, err := u.alertRepo.Resolve(ctx, a.ID, now); err != nil {
			log.Printf("[mel][reconcile] orphan resolution failed alert_id=%s rule_key=%s err=%v", a.ID, a.RuleKey, err)
			summary.RulesFailed++
			continue
		}
		log.Printf("[mel][reconcile] orphan alert resolved alert_id=%s rule_key=%s", a.ID, a.RuleKey)
		summary.OrphansResolved++
	}

	snap, err := loadSnapshot(ctx, u.provider)
	if err != nil {
		return summary, err
	}
	summary.Degraded = snap.Degraded

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for _, rule := range rules {
		g.Go(func() error {
			action, counts, err := u.reconcileRule(gctx, rule, snap)

			mu.Lock()
			defer mu.Unlock()
			summary.RulesEvaluated++
			if err != nil {
				// Isolated: one rule's failure must not blank out the rest
				// of the sweep.
				log.Printf("[mel][reconcile] rule evaluation failed rule_key=%s err=%v", rule.Key(), err)
				summary.RulesFailed++
				return nil
			}
			switch action {
			case AlertActionCreate:
				log.Printf("[mel][reconcile] alert created rule_key=%s available=%d minimum=%d", rule.Key(), counts.Available, rule.MinimumQuantity)
				summary.AlertsCreated++
			case AlertActionUpdate:
				summary.AlertsUpdated++
			case AlertActionResolve:
				log.Printf("[mel][reconcile] alert resolved rule_key=%s available=%d minimum=%d", rule.Key(), counts.Available, rule.MinimumQuantity)
				summary.AlertsResolved++
			}
			return nil
		})
	}
	_ = g.Wait()

	log.Printf("[mel][reconcile] sweep done rules=%d created=%d updated=%d resolved=%d orphans=%d failed=%d degraded=%t",
		summary.RulesEvaluated, summary.AlertsCreated, summary.AlertsUpdated, summary.AlertsResolved,
		summary.OrphansResolved, summary.RulesFailed, summary.Degraded)
	return summary, nil
}

func (u *ReconcileUseCase) reconcileRule(ctx context.Context, rule entities.SectorMelRule, snap *Snapshot) (AlertAction, mel.Availability, error) {
	avail, hasData := u.calc.Compute(rule, snap.Equipment, snap.ServiceOrders)

	var existing *entities.MelAlert
	current, err := u.alertRepo.GetActiveByRuleKey(ctx, rule.Key())
	if err != nil {
		return AlertActionNone, avail, err
	}
	if current.ID != "" {
		existing = &current
	}

	action := Transition(rule, avail, hasData, existing)
	switch action {
	case AlertActionCreate:
		now := time.Now().UTC()
		_, err = u.alertRepo.Create(ctx, entities.MelAlert{
			ID:          uuid.NewString(),
			RuleKey:     rule.Key(),
			SectorID:    rule.SectorID,
			SectorName:  rule.SectorName,
			GroupKey:    rule.GroupKey,
			GroupName:   rule.GroupName,
			Available:   avail.Available,
			Total:       avail.Total,
			Unavailable: avail.Unavailable,
			Minimum:     rule.MinimumQuantity,
			Status:      entities.MelAlertStatusAtivo,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	case AlertActionUpdate:
		_, err = u.alertRepo.UpdateCounts(ctx, existing.ID, avail.Available, avail.Total, avail.Unavailable)
	case AlertActionResolve:
		_, err = u.alertRepo.Resolve(ctx, existing.ID, time.Now().UTC())
	}
	if err != nil {
		return AlertActionNone, avail, err
	}
	return action, avail, nil
}

func (u *ReconcileUseCase) ListAlerts(ctx context.Context, activeOnly bool) ([]entities.MelAlert, error) {
	if activeOnly {
		return u.alertRepo.ListActive(ctx)
	}
	return u.alertRepo.List(ctx)
}
