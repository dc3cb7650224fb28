package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingResponse модель брони для отдачи фронтенду
type BookingResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	OwnerID         int64  `json:"ownerId"`
	OwnerName       string `json:"ownerName,omitempty"`
}

// BookingListResponse список броней одного пользователя
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DayBookingsResponse брони одного дня для сводного списка
type DayBookingsResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// AllBookingsResponse сводный список броней, сгруппированный по датам
type AllBookingsResponse struct {
	Days []DayBookingsResponse `json:"days"`
}

// StatusEntryResponse статус одного дня окна
type StatusEntryResponse struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// StatusWindowResponse окно статусов пользователя
type StatusWindowResponse struct {
	UserID      int64                 `json:"userId"`
	DisplayName string                `json:"displayName,omitempty"`
	Entries     []StatusEntryResponse `json:"entries"`
}

// ToggleStatusResponse результат переключения статуса
type ToggleStatusResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// UserResponse профиль пользователя со служебными флагами
type UserResponse struct {
	UserID       int64  `json:"userId"`
	DisplayName  string `json:"displayName"`
	IsAdmin      bool   `json:"isAdmin"`
	IsRestricted bool   `json:"isRestricted"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// CommentResponse заметка пользователя на дату
type CommentResponse struct {
	UserID int64  `json:"userId"`
	Date   string `json:"date"`
	Text   string `json:"text"`
}

// FromDomainBooking конвертирует domain.Booking в модель ответа
func FromDomainBooking(b domain.Booking, ownerName string) BookingResponse {
	end, err := b.EndTime()
	endStr := ""
	if err == nil {
		endStr = end.String()
	}
	return BookingResponse{
		Date:            b.Date.String(),
		StartTime:       b.StartTime.String(),
		EndTime:         endStr,
		DurationMinutes: b.DurationMinutes,
		OwnerID:         b.OwnerID,
		OwnerName:       ownerName,
	}
}

// FromDomainStatusEntry конвертирует domain.StatusEntry в модель ответа
func FromDomainStatusEntry(e domain.StatusEntry, comment string) StatusEntryResponse {
	return StatusEntryResponse{
		Date:    e.Date.String(),
		Status:  string(e.Status),
		Comment: comment,
	}
}
