package response

import (
	"time"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/usecase"
)

type MelAlertResponse struct {
	ID         string `json:"id"`
	RuleKey    string `json:"rule_key"`
	SectorID   string `json:"sector_id"`
	SectorName string `json:"sector_name"`
	GroupKey   string `json:"equipment_group_key"`
	GroupName  string `json:"equipment_group_name"`

	Available   int `json:"available"`
	Total       int `json:"total"`
	Unavailable int `json:"unavailable"`
	Minimum     int `json:"minimum"`

	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func FromMelAlert(a entities.MelAlert) MelAlertResponse {
	return MelAlertResponse{
		ID:          a.ID,
		RuleKey:     a.RuleKey,
		SectorID:    a.SectorID,
		SectorName:  a.SectorName,
		GroupKey:    a.GroupKey,
		GroupName:   a.GroupName,
		Available:   a.Available,
		Total:       a.Total,
		Unavailable: a.Unavailable,
		Minimum:     a.Minimum,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		ResolvedAt:  a.ResolvedAt,
	}
}

func FromMelAlerts(alerts []entities.MelAlert) []MelAlertResponse {
	out := make([]MelAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, FromMelAlert(a))
	}
	return out
}

type ReconcileResponse struct {
	RulesEvaluated  int  `json:"rules_evaluated"`
	AlertsCreated   int  `json:"alerts_created"`
	AlertsUpdated   int  `json:"alerts_updated"`
	AlertsResolved  int  `json:"alerts_resolved"`
	OrphansResolved int  `json:"orphans_resolved"`
	RulesFailed     int  `json:"rules_failed"`
	Degraded        bool `json:"degraded"`
}

func FromReconcileSummary(s usecase.ReconcileSummary) ReconcileResponse {
	return ReconcileResponse{
		RulesEvaluated:  s.RulesEvaluated,
		AlertsCreated:   s.AlertsCreated,
		AlertsUpdated:   s.AlertsUpdated,
		AlertsResolved:  s.AlertsResolved,
		OrphansResolved: s.OrphansResolved,
		RulesFailed:     s.RulesFailed,
		Degraded:        s.Degraded,
	}
}
