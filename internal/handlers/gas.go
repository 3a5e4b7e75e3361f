package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gasmeter"
	"gasmeter/internal/aga8"
	"gasmeter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	errGenerateReport = "failed to generate report"
	errEvaluateZ      = "failed to evaluate compressibility factor"
)

// Request DTO for a single calculation.
type reportRequest struct {
	Composition     map[string]float64 `json:"composition" binding:"required"`
	PressureBarg    float64            `json:"pressure_barg"`
	TemperatureDegC float64            `json:"temperature_degc"`
	Strategy        string             `json:"strategy,omitempty"` // cubic | empirical; empty = cubic
}

// CalcRequest is an exported model for Swagger docs of the calculation payload.
type CalcRequest struct {
	// Composition in mol%, e.g. {"methane": 94.5, "ethane": 3.2}
	Composition map[string]float64 `json:"composition"`
	// Gauge pressure in bar
	PressureBarg float64 `json:"pressure_barg" example:"20"`
	// Temperature in Celsius
	TemperatureDegC float64 `json:"temperature_degc" example:"25"`
	// Solver strategy. Allowed: cubic, empirical (default cubic)
	Strategy string `json:"strategy,omitempty" example:"cubic"`
}

func (r reportRequest) toParams() service.ReportParams {
	return service.ReportParams{
		Composition:     r.Composition,
		PressureBarg:    r.PressureBarg,
		TemperatureDegC: r.TemperatureDegC,
		Strategy:        r.Strategy,
	}
}

// isBadCalcInput reports whether the engine rejected the request itself, as
// opposed to failing while processing it.
func isBadCalcInput(err error) bool {
	for _, sentinel := range []error{
		aga8.ErrEmptyComposition,
		aga8.ErrZeroTotalComposition,
		aga8.ErrUnknownComponent,
		aga8.ErrOutOfValidityRange,
		aga8.ErrInvalidPressure,
		aga8.ErrInvalidTemperature,
		aga8.ErrUnknownStrategy,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// @Summary      Generate property report
// @Description  Runs the simplified AGA8 pipeline and stores the result.
// @Tags         gas
// @Accept       json
// @Produce      json
// @Param        body  body   CalcRequest  true  "Calculation payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/gas/report [post]
// @Security     BearerAuth
func (h *Handler) generateReport(c *gin.Context) {
	var req reportRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ctx := c.Request.Context()
	rec, err := h.services.GasReport.Generate(ctx, req.toParams())
	if err != nil {
		if isBadCalcInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGenerateReport, "gas_report_failed", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Evaluate compressibility factor
// @Description  Runs only the Z-factor stage; nothing is stored.
// @Tags         gas
// @Accept       json
// @Produce      json
// @Param        body  body   CalcRequest  true  "Calculation payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/gas/zfactor [post]
// @Security     BearerAuth
func (h *Handler) evaluateZ(c *gin.Context) {
	var req reportRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ctx := c.Request.Context()
	ev, err := h.services.GasReport.EvaluateZ(ctx, req.toParams())
	if err != nil {
		if isBadCalcInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errEvaluateZ, "gas_zfactor_failed", err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// batchRowError reports one skipped spreadsheet row.
type batchRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// @Summary      Batch calculation import
// @Description  Upload an xlsx file: header row with component names plus pressure_barg, temperature_degc and optional strategy columns; one calculation per data row. Rows that fail validation are skipped and reported.
// @Tags         gas
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "xlsx file"
// @Success      200   {object}  map[string]interface{}  "count, records, skipped"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/gas/batch [post]
// @Security     BearerAuth
func (h *Handler) batchImport(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer func() { _ = file.Close() }()

	f, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid xlsx file"})
		return
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty sheet"})
		return
	}

	header := normalizeHeader(rows[0])
	ctx := c.Request.Context()

	var (
		records []gasmeter.ReportRecord
		skipped []batchRowError
	)
	for i := 1; i < len(rows); i++ {
		params, err := parseBatchRow(header, rows[i])
		if err != nil {
			skipped = append(skipped, batchRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		rec, err := h.services.GasReport.Generate(ctx, params)
		if err != nil {
			skipped = append(skipped, batchRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		records = append(records, rec)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"records": records,
		"skipped": skipped,
	})
}

func normalizeHeader(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.ToLower(strings.TrimSpace(cell))
	}
	return out
}

// parseBatchRow maps one spreadsheet row onto calculation params using the
// header: pressure_barg and temperature_degc are required columns, strategy
// is optional, every other non-empty column is a component in mol%.
func parseBatchRow(header, row []string) (service.ReportParams, error) {
	params := service.ReportParams{Composition: map[string]float64{}}
	var havePressure, haveTemperature bool

	for i, name := range header {
		if i >= len(row) || strings.TrimSpace(row[i]) == "" || name == "" {
			continue
		}
		cell := strings.TrimSpace(row[i])
		switch name {
		case "strategy":
			params.Strategy = strings.ToLower(cell)
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return service.ReportParams{}, errors.New("column " + name + ": not a number")
		}
		switch name {
		case "pressure_barg":
			params.PressureBarg = v
			havePressure = true
		case "temperature_degc":
			params.TemperatureDegC = v
			haveTemperature = true
		default:
			params.Composition[name] = v
		}
	}

	if !havePressure {
		return service.ReportParams{}, errors.New("missing pressure_barg")
	}
	if !haveTemperature {
		return service.ReportParams{}, errors.New("missing temperature_degc")
	}
	if len(params.Composition) == 0 {
		return service.ReportParams{}, errors.New("no composition columns")
	}
	return params, nil
}
