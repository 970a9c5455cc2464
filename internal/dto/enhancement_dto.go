package dto

import "time"

// SetActiveTechniqueRequest selects a technique; null clears the selection.
type SetActiveTechniqueRequest struct {
	Technique *string `json:"technique"`
}

type SetEnhancementEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type UpdateTechniqueConfigRequest struct {
	Temperature     *float64       `json:"temperature" validate:"omitempty,min=0,max=1"`
	CreativityLevel *float64       `json:"creativity_level" validate:"omitempty,min=0,max=100"`
	CustomParams    map[string]any `json:"custom_params"`
}

type TechniqueResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TechniqueConfigResponse struct {
	Temperature     float64        `json:"temperature"`
	CreativityLevel float64        `json:"creativity_level"`
	CustomParams    map[string]any `json:"custom_params"`
}

type TechniqueResultResponse struct {
	Samples        []any     `json:"samples"`
	PreviewStoreId string    `json:"preview_store_id"`
	PreviewUrl     string    `json:"preview_url"`
	AppliedAt      time.Time `json:"applied_at"`
}

type TechniqueStateResponse struct {
	TechniqueResponse
	Config     TechniqueConfigResponse  `json:"config"`
	Processing bool                     `json:"processing"`
	Result     *TechniqueResultResponse `json:"result,omitempty"`
}

type EnhancementStateResponse struct {
	ActiveTechnique *string                  `json:"active_technique"`
	Enabled         bool                     `json:"enabled"`
	Techniques      []TechniqueStateResponse `json:"techniques"`
}
