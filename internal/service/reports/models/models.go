package models

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// weekdayNames имена дней недели по нумерации ISO 8601 (1 = Monday)
var weekdayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

// ClaimantResponse вилла в ответе отчета
type ClaimantResponse struct {
	Community string `json:"community"`
	Villa     string `json:"villa"`
}

// ActiveClaimantsResponse список вилл с активными бронированиями
type ActiveClaimantsResponse struct {
	Claimants []ClaimantResponse `json:"claimants"`
	Total     int                `json:"total"`
}

// HourCountResponse количество бронирований для одного часа начала
type HourCountResponse struct {
	StartHour int   `json:"startHour"`
	Count     int64 `json:"count"`
}

// WeekdayCountResponse количество бронирований для одного дня недели
type WeekdayCountResponse struct {
	Weekday string `json:"weekday"`
	Count   int64  `json:"count"`
}

// UsageReportResponse распределение бронирований по часам и дням недели
type UsageReportResponse struct {
	ByHour    []HourCountResponse    `json:"byHour"`
	ByWeekday []WeekdayCountResponse `json:"byWeekday"`
}

// ActivityEntryResponse запись журнала активности в ответе API
type ActivityEntryResponse struct {
	ID         int64     `json:"id"`
	EventType  string    `json:"eventType"`
	Community  string    `json:"community"`
	Villa      string    `json:"villa"`
	Court      string    `json:"court"`
	Date       string    `json:"date"`
	StartHour  int       `json:"startHour"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ActivityListResponse журнал активности за запрошенное окно
type ActivityListResponse struct {
	Days    int                     `json:"days"`
	Entries []ActivityEntryResponse `json:"entries"`
	Total   int                     `json:"total"`
}

// FromDomainClaimants конвертирует список вилл в DTO ответа
func FromDomainClaimants(claimants []domain.Claimant) *ActiveClaimantsResponse {
	items := make([]ClaimantResponse, 0, len(claimants))
	for _, c := range claimants {
		items = append(items, ClaimantResponse{
			Community: c.Community,
			Villa:     c.Villa,
		})
	}

	return &ActiveClaimantsResponse{
		Claimants: items,
		Total:     len(items),
	}
}

// FromDomainUsage конвертирует распределения в DTO ответа
func FromDomainUsage(byHour []domain.HourCount, byWeekday []domain.WeekdayCount) *UsageReportResponse {
	hours := make([]HourCountResponse, 0, len(byHour))
	for _, hc := range byHour {
		hours = append(hours, HourCountResponse{
			StartHour: hc.StartHour,
			Count:     hc.Count,
		})
	}

	weekdays := make([]WeekdayCountResponse, 0, len(byWeekday))
	for _, wc := range byWeekday {
		weekdays = append(weekdays, WeekdayCountResponse{
			Weekday: weekdayNames[wc.Weekday],
			Count:   wc.Count,
		})
	}

	return &UsageReportResponse{
		ByHour:    hours,
		ByWeekday: weekdays,
	}
}

// FromDomainActivityList конвертирует записи журнала в DTO ответа
func FromDomainActivityList(entries []*domain.ActivityEntry, days int) *ActivityListResponse {
	items := make([]ActivityEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ActivityEntryResponse{
			ID:         entry.ID,
			EventType:  string(entry.EventType),
			Community:  entry.Claimant.Community,
			Villa:      entry.Claimant.Villa,
			Court:      entry.Court,
			Date:       entry.Date.Format(domain.DateFormat),
			StartHour:  entry.StartHour,
			OccurredAt: entry.OccurredAt,
		})
	}

	return &ActivityListResponse{
		Days:    days,
		Entries: items,
		Total:   len(items),
	}
}
