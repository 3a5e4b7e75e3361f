package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"gasmeter"
	"gasmeter/internal/repository"
	"gasmeter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errListReports = "failed to load reports"
	errGetReport   = "failed to load report"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}

// @Summary      List stored calculations
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD') and solver strategy. A date-only 'to' is treated as end-of-day inclusive.
// @Tags         reports
// @Produce      json
// @Param        from      query   string  false  "Start of range"  example(2026-08-01)
// @Param        to        query   string  false  "End of range. Date-only treated as end of day."  example(2026-08-31)
// @Param        strategy  query   string  false  "Solver strategy"  Enums(cubic,empirical)
// @Success      200   {object}  map[string]interface{}  "count, records"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/reports [get]
// @Security     BearerAuth
func (h *Handler) listReports(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from time.Time
		to   time.Time
		err  error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		// If the user didn't include a time component, treat "to" as the end of that day.
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}

	// Validate range if both provided
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}

	records, err := h.services.History.List(ctx, service.HistoryFilter{
		From:     from,
		To:       to,
		Strategy: c.Query("strategy"),
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListReports, "reports_list_failed", err,
			"from", from, "to", to)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"records": records,
	})
}

// @Summary      Get one stored calculation
// @Tags         reports
// @Produce      json
// @Param        id   path   string  true  "Record id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports/{id} [get]
// @Security     BearerAuth
func (h *Handler) getReport(c *gin.Context) {
	rec, ok := h.fetchRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

// fetchRecord loads the record named by the :id path param, writing the
// error response itself when the lookup fails.
func (h *Handler) fetchRecord(c *gin.Context) (gasmeter.ReportRecord, bool) {
	rec, err := h.services.History.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return gasmeter.ReportRecord{}, false
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetReport, "reports_get_failed", err,
			"id", c.Param("id"))
		return gasmeter.ReportRecord{}, false
	}
	return rec, true
}

// @Summary      Export a stored calculation as PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        id   path   string  true  "Record id"
// @Success      200  {file}  file
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports/{id}/pdf [get]
// @Security     BearerAuth
func (h *Handler) reportPDF(c *gin.Context) {
	rec, ok := h.fetchRecord(c)
	if !ok {
		return
	}

	pdf := buildReportPDF(rec)
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "gas-report-"+rec.ID+".pdf"))
	if err := pdf.Output(c.Writer); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "report export error", "reports_pdf_failed", err,
			"id", rec.ID)
	}
}

// buildReportPDF renders a one-page summary of the stored calculation.
func buildReportPDF(rec gasmeter.ReportRecord) *gofpdf.Fpdf {
	r := rec.Report

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Natural Gas Property Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Record: %s", rec.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", rec.CreatedAt.Format(layoutDateTime)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Method: %s (%s strategy)", r.Compliance.Method, r.Compliance.Strategy))
	pdf.Ln(10)

	section := func(title string, lines ...string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range lines {
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	section("Operating Point",
		fmt.Sprintf("Pressure: %.3f barg (%.3f bara)", r.InputConditions.PressureBarg, r.InputConditions.PressureBara),
		fmt.Sprintf("Temperature: %.2f degC (%.2f K)", r.InputConditions.TemperatureDegC, r.InputConditions.TemperatureK),
	)
	section("Basic Properties",
		fmt.Sprintf("Molecular weight: %.3f g/mol", r.BasicProperties.MolecularWeight),
		fmt.Sprintf("Specific gravity: %.4f", r.BasicProperties.SpecificGravity),
		fmt.Sprintf("Compressibility factor: %.5f", r.BasicProperties.CompressibilityFactor),
		fmt.Sprintf("Density: %.3f kg/m3 (%.4f kg/m3 at standard conditions)",
			r.BasicProperties.DensityKgM3, r.BasicProperties.DensityStdKgM3),
	)
	section("Heating Values",
		fmt.Sprintf("Higher heating value: %.3f MJ/m3", r.HeatingValues.HigherHeatingValueMJM3),
		fmt.Sprintf("Lower heating value: %.3f MJ/m3", r.HeatingValues.LowerHeatingValueMJM3),
		fmt.Sprintf("Wobbe index: %.3f MJ/m3", r.HeatingValues.WobbeIndexMJM3),
	)
	section("Uncertainty",
		fmt.Sprintf("Compressibility factor: %.3f %%", r.Uncertainties.CompressibilityPct),
		fmt.Sprintf("Density: %.3f %%", r.Uncertainties.DensityPct),
		fmt.Sprintf("Heating value: %.3f %%", r.Uncertainties.HeatingValuePct),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Composition (mol%)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, name := range sortedComponents(rec.Composition) {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.4f", name, rec.Composition[name]))
		pdf.Ln(6)
	}

	return pdf
}

func sortedComponents(comp map[string]float64) []string {
	names := make([]string, 0, len(comp))
	for name := range comp {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
