package response

import "hsj_mel/internal/usecase"

type AvailabilityResponse struct {
	SectorID     string `json:"sector_id"`
	SectorName   string `json:"sector_name"`
	GroupKey     string `json:"equipment_group_key"`
	GroupName    string `json:"equipment_group_name"`
	Total        int    `json:"total"`
	Unavailable  int    `json:"unavailable"`
	Available    int    `json:"available"`
	Minimum      int    `json:"minimum"`
	InAlert      bool   `json:"in_alert"`
	HasData      bool   `json:"has_data"`
	OrdersSource string `json:"orders_source"`
}

func FromAvailabilityReport(r usecase.AvailabilityReport) AvailabilityResponse {
	return AvailabilityResponse{
		SectorID:     r.SectorID,
		SectorName:   r.SectorName,
		GroupKey:     r.GroupKey,
		GroupName:    r.GroupName,
		Total:        r.Total,
		Unavailable:  r.Unavailable,
		Available:    r.Available,
		Minimum:      r.Minimum,
		InAlert:      r.InAlert,
		HasData:      r.HasData,
		OrdersSource: string(r.OrdersSource),
	}
}

type SectorGroupResponse struct {
	GroupKey       string `json:"equipment_group_key"`
	GroupName      string `json:"equipment_group_name"`
	EquipmentCount int    `json:"equipment_count"`
	Unavailable    int    `json:"unavailable"`
	Available      int    `json:"available"`
	Minimum        int    `json:"minimum"`
	HasRule        bool   `json:"has_rule"`
	InAlert        bool   `json:"in_alert"`
}

func FromSectorGroupReports(reports []usecase.SectorGroupReport) []SectorGroupResponse {
	out := make([]SectorGroupResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, SectorGroupResponse{
			GroupKey:       r.GroupKey,
			GroupName:      r.GroupName,
			EquipmentCount: r.EquipmentCount,
			Unavailable:    r.Unavailable,
			Available:      r.Available,
			Minimum:        r.Minimum,
			HasRule:        r.HasRule,
			InAlert:        r.InAlert,
		})
	}
	return out
}
