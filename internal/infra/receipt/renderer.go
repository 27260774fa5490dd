package receipt

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

// ErrRender ошибка формирования PDF
var ErrRender = errors.New("receipt: failed to render pdf")

const currency = "S/"

// Renderer формирует PDF-квитанцию по подтверждению бронирования
type Renderer struct {
	restaurant string
}

func NewRenderer(restaurant string) *Renderer {
	return &Renderer{restaurant: restaurant}
}

// Render квитанция для экрана подтверждения
func (r *Renderer) Render(c *domain.Confirmation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetTitle(fmt.Sprintf("Reserva %s", c.ReservationCode), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(r.restaurant), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Reserva %s", c.ReservationCode)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(variantTitle(c.Variant)), "", 1, "C", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Cliente", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	line(pdf, tr, "Nombre", c.CustomerName)
	line(pdf, tr, "Email", c.CustomerEmail)
	line(pdf, tr, "Teléfono", c.CustomerPhone)

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Reserva", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	line(pdf, tr, "Fecha", c.Date)
	if c.Variant == domain.VariantEvent {
		line(pdf, tr, "Turno", c.Slot)
	} else {
		line(pdf, tr, "Hora", c.Slot)
	}
	line(pdf, tr, "Personas", fmt.Sprintf("%d", c.Guests))
	line(pdf, tr, "Estado", string(c.Status))

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Pago", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	line(pdf, tr, "Método", c.PaymentMethod.RemoteName())
	if c.PaymentPlan != "" {
		line(pdf, tr, "Modalidad", planTitle(c.PaymentPlan))
	}
	line(pdf, tr, "Pagado", currency+" "+c.AmountPaid.String())
	if c.TransactionID != nil {
		line(pdf, tr, "Transacción", *c.TransactionID)
	}
	if c.PaymentFailed {
		pdf.SetTextColor(180, 0, 0)
		msg := "El pago no se completó. Puede reintentarlo desde la confirmación."
		if c.PaymentError != nil && *c.PaymentError != "" {
			msg = fmt.Sprintf("%s (%s)", msg, *c.PaymentError)
		}
		pdf.MultiCell(0, 4, tr(msg), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %s %s", currency, c.Total.String()), "", 1, "L", false, 0, "")
	if outstanding := c.Total - c.AmountPaid; outstanding > 0 {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Saldo pendiente: %s %s", currency, outstanding.String())), "", 1, "L", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out.Bytes(), nil
}

func line(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s: %s", label, value)), "", 1, "L", false, 0, "")
}

func variantTitle(v domain.Variant) string {
	if v == domain.VariantEvent {
		return "Evento privado"
	}
	return "Reserva de mesa"
}

func planTitle(p domain.PaymentPlan) string {
	if p == domain.PlanFull {
		return "Pago completo"
	}
	return "Depósito"
}
