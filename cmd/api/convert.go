package main

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"unitconv/internal/units"
)

// ConvertInput defines the request body for the convert endpoint
type ConvertInput struct {
	Body struct {
		Type  string `json:"type" example:"distance" doc:"Conversion type: distance, temperature or weight"`
		Value any    `json:"value" doc:"Value to convert, a number or a numeric string"`
		From  string `json:"from" example:"km" doc:"Unit code to convert from (case-sensitive)"`
		To    string `json:"to" example:"mi" doc:"Unit code to convert to (case-sensitive)"`
	}
}

// ConversionResult is the body returned by a successful conversion
type ConversionResult struct {
	Type      string  `json:"type" example:"distance"`
	From      string  `json:"from" example:"km"`
	To        string  `json:"to" example:"mi"`
	Value     any     `json:"value" doc:"Value as supplied in the request"`
	Result    float64 `json:"result" example:"3.11" doc:"Converted value rounded to precision decimal places"`
	Precision int     `json:"precision" example:"2" doc:"Decimal places applied to the result"`
}

// ConvertOutput represents the response for the convert endpoint
type ConvertOutput struct {
	Body ConversionResult
}

// handleConvert converts a single value and maps conversion errors to HTTP statuses
func (app *App) handleConvert(_ context.Context, input *ConvertInput) (*ConvertOutput, error) {
	req := input.Body

	result, err := app.conversionService.Convert(req.Type, req.Value, req.From, req.To)
	app.metrics.observe(req.Type, err)
	if err != nil {
		switch {
		case errors.Is(err, units.ErrUnknownConversionType),
			errors.Is(err, units.ErrInvalidNumericValue),
			errors.Is(err, units.ErrUnknownUnit):
			app.logger.Debug("rejected conversion request",
				"type", req.Type,
				"from", req.From,
				"to", req.To,
				"error", err,
			)
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			app.logger.Error("conversion failed",
				"type", req.Type,
				"from", req.From,
				"to", req.To,
				"error", err,
			)
			return nil, huma.Error500InternalServerError("conversion failed")
		}
	}

	return &ConvertOutput{
		Body: ConversionResult{
			Type:      req.Type,
			From:      req.From,
			To:        req.To,
			Value:     req.Value,
			Result:    result,
			Precision: app.conversionService.Precision(),
		},
	}, nil
}
