package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/application/reports"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/pdf"
)

// ReportHandler exportaciones CSV y PDF del panel.
type ReportHandler struct {
	reports *reports.Service
	pdf     *pdf.SummaryGenerator
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(svc *reports.Service, gen *pdf.SummaryGenerator) *ReportHandler {
	return &ReportHandler{reports: svc, pdf: gen}
}

// ExportCSV descarga el resumen como CSV.
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.reports.CSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard-report.csv"`)
	return c.Send(out)
}

// ExportPDF descarga el reporte ejecutivo en PDF.
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.pdf.Generate(h.reports.Summary(), h.reports.Regional(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard-report.pdf"`)
	return c.Send(out)
}
