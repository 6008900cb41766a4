package model

// VisitStats are the aggregate counters exposed to the admin panel.
// All values are computed from the visits table and announcement view counters;
// nothing here is persisted as a running total.
type VisitStats struct {
	TotalVisits            int `json:"total_visits"`
	UniqueVisitors         int `json:"unique_visitors"`
	TodayVisits            int `json:"today_visits"`
	TotalAnnouncementViews int `json:"total_announcement_views"`
}
