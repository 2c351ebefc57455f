package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	schoolModel "sekolahku_backend/internals/features/school/schools/model"
)

/* ===== Request ===== */

type SchoolCreateRequest struct {
	SchoolName    string         `json:"school_name" validate:"required,min=3,max=120"`
	SchoolAddress *string        `json:"school_address,omitempty"`
	SchoolPhone   *string        `json:"school_phone,omitempty"`
	SchoolLogoURL *string        `json:"school_logo_url,omitempty"`
	SchoolTheme   datatypes.JSON `json:"school_theme,omitempty"`
}

type SchoolUpdateRequest struct {
	SchoolName    *string        `json:"school_name,omitempty" validate:"omitempty,min=3,max=120"`
	SchoolAddress *string        `json:"school_address,omitempty"`
	SchoolPhone   *string        `json:"school_phone,omitempty"`
	SchoolLogoURL *string        `json:"school_logo_url,omitempty"`
	SchoolTheme   datatypes.JSON `json:"school_theme,omitempty"`
	SchoolStatus  *string        `json:"school_status,omitempty"`
}

type SchoolSubscriptionUpdateRequest struct {
	Plan   string     `json:"plan" validate:"required"`
	EndsAt *time.Time `json:"ends_at,omitempty"`
}

func (r *SchoolCreateRequest) ToModel() *schoolModel.SchoolModel {
	return &schoolModel.SchoolModel{
		SchoolName:    strings.TrimSpace(r.SchoolName),
		SchoolAddress: r.SchoolAddress,
		SchoolPhone:   r.SchoolPhone,
		SchoolLogoURL: r.SchoolLogoURL,
		SchoolTheme:   r.SchoolTheme,
	}
}

// ApplyToModel menimpa hanya field yang dikirim.
func (r *SchoolUpdateRequest) ApplyToModel(m *schoolModel.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = strings.TrimSpace(*r.SchoolName)
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolLogoURL != nil {
		m.SchoolLogoURL = r.SchoolLogoURL
	}
	if len(r.SchoolTheme) > 0 {
		m.SchoolTheme = r.SchoolTheme
	}
	if r.SchoolStatus != nil {
		m.SchoolStatus = schoolModel.SchoolStatus(strings.TrimSpace(*r.SchoolStatus))
	}
}

/* ===== Response ===== */

type SchoolResponse struct {
	SchoolID               uuid.UUID      `json:"school_id"`
	SchoolName             string         `json:"school_name"`
	SchoolSlug             string         `json:"school_slug"`
	SchoolStatus           string         `json:"school_status"`
	SchoolSubscriptionPlan string         `json:"school_subscription_plan"`
	SubscriptionEndsAt     *time.Time     `json:"school_subscription_ends_at,omitempty"`
	SchoolAddress          *string        `json:"school_address,omitempty"`
	SchoolPhone            *string        `json:"school_phone,omitempty"`
	SchoolLogoURL          *string        `json:"school_logo_url,omitempty"`
	SchoolTheme            datatypes.JSON `json:"school_theme,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
}

func FromModel(m *schoolModel.SchoolModel) *SchoolResponse {
	return &SchoolResponse{
		SchoolID:               m.SchoolID,
		SchoolName:             m.SchoolName,
		SchoolSlug:             m.SchoolSlug,
		SchoolStatus:           string(m.SchoolStatus),
		SchoolSubscriptionPlan: string(m.SchoolSubscriptionPlan),
		SubscriptionEndsAt:     m.SchoolSubscriptionEndsAt,
		SchoolAddress:          m.SchoolAddress,
		SchoolPhone:            m.SchoolPhone,
		SchoolLogoURL:          m.SchoolLogoURL,
		SchoolTheme:            m.SchoolTheme,
		CreatedAt:              m.SchoolCreatedAt,
	}
}

func FromModels(ms []schoolModel.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
