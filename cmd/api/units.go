package main

import (
	"context"

	"unitconv/internal/units"
)

// ListUnitsOutput represents the response for the units endpoint
type ListUnitsOutput struct {
	Body struct {
		Domains []units.Domain `json:"domains" doc:"Supported conversion types and unit codes"`
	}
}

func (app *App) handleListUnits(_ context.Context, _ *struct{}) (*ListUnitsOutput, error) {
	resp := &ListUnitsOutput{}
	resp.Body.Domains = units.Supported()
	return resp, nil
}
