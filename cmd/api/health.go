package main

import (
	"context"

	"unitconv/internal/units"
)

// PingOutput reports liveness along with the settings conversions run under
type PingOutput struct {
	Body struct {
		Status    string                 `json:"status" example:"ok" doc:"Service status"`
		Precision int                    `json:"precision" example:"2" doc:"Decimal places every conversion result is rounded to"`
		Types     []units.ConversionType `json:"types" doc:"Supported conversion types"`
	}
}

func (app *App) handlePing(_ context.Context, _ *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Status = "ok"
	resp.Body.Precision = app.conversionService.Precision()
	resp.Body.Types = units.Types()
	return resp, nil
}
