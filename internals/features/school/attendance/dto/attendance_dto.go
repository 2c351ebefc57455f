package dto

import "time"

type AttendanceMarkItem struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	Status    string  `json:"status" validate:"required,oneof=present absent sick leave late"`
	Note      *string `json:"note,omitempty"`
}

// AttendanceMarkRequest: presensi satu tanggal untuk banyak siswa sekaligus
// (guru menandai satu rombel dalam satu submit).
type AttendanceMarkRequest struct {
	Date  time.Time            `json:"date" validate:"required"`
	Items []AttendanceMarkItem `json:"items" validate:"required,min=1,dive"`
}
