package submit_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/notificationservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
)

// buildReservationRequest тело создания бронирования из черновика и итогов
func buildReservationRequest(session *domain.BookingSession, totals pricing.Totals) *reservationservice.CreateReservationRequest {
	d := session.Draft
	method := domain.EffectiveMethod(d.PaymentMethod)

	req := &reservationservice.CreateReservationRequest{
		CustomerID:      session.CustomerID,
		ReservationDate: d.Schedule.Date,
		ReservationTime: d.Schedule.Time.String(),
		PeopleCount:     d.Schedule.Guests,
		PaymentMethod:   method.RemoteName(),
		ReservationType: session.Variant.ReservationType(),
		Status:          string(domain.InitialStatus(totals.Total)),
		HolderDocument:  d.Customer.DocumentNumber,
		HolderName:      strings.TrimSpace(d.Customer.Name),
		HolderEmail:     strings.TrimSpace(d.Customer.Email),
		HolderPhone:     strings.TrimSpace(d.Customer.Phone),
		Observation:     d.SpecialRequests,
		TermsAccepted:   d.TermsAccepted,
		TotalAmount:     totals.Total.Float64(),
	}

	if d.EventType != nil {
		req.EventTypeID = &d.EventType.RemoteID
	}
	if sh := d.Schedule.Shift; sh != nil {
		req.ReservationTime = sh.StartTime.String()
		req.EventShift = sh.Name
	}
	if ev := d.Resource.Event; ev != nil {
		if ev.Distribution != nil {
			req.Distribution = ev.Distribution.ID
		}
		if ev.Linen != nil {
			req.TableClothColor = ev.Linen.Name
		}
	}
	if t := d.Resource.Table; t != nil {
		req.Tables = []reservationservice.TableLine{{TableID: t.ID}}
	}

	for _, line := range d.MenuItems {
		req.Products = append(req.Products, reservationservice.ProductLine{
			ProductID: line.Item.ID,
			Quantity:  line.Quantity,
			Subtotal:  line.Item.Price.Mul(line.Quantity).Float64(),
		})
	}
	for _, s := range d.Services {
		req.Events = append(req.Events, reservationservice.ServiceLine{
			ServiceID: s.ID,
			Quantity:  1,
			Subtotal:  s.Price.Float64(),
		})
	}

	return req
}

// newConfirmation подтверждение сразу после создания бронирования
func newConfirmation(session *domain.BookingSession, res *reservationservice.Reservation, totals pricing.Totals) *domain.Confirmation {
	d := session.Draft
	status := domain.ReservationStatus(res.Status)
	if status == "" {
		status = domain.InitialStatus(totals.Total)
	}

	c := &domain.Confirmation{
		ReservationID:   res.ID,
		ReservationCode: res.Code,
		Variant:         session.Variant,
		Status:          status,
		AccessToken:     uuid.NewString(),
		CustomerID:      session.CustomerID,
		CustomerName:    strings.TrimSpace(d.Customer.Name),
		CustomerEmail:   strings.TrimSpace(d.Customer.Email),
		CustomerPhone:   strings.TrimSpace(d.Customer.Phone),
		Date:            d.Schedule.Date,
		Slot:            d.Schedule.Time.String(),
		Guests:          d.Schedule.Guests,
		PaymentMethod:   domain.EffectiveMethod(d.PaymentMethod),
		Total:           totals.Total,
		AmountDue:       totals.AmountDue,
		Stages:          domain.NewStageOutcomes(),
	}
	if d.Schedule.Shift != nil {
		c.Slot = d.Schedule.Shift.Name
	}
	if session.Variant == domain.VariantEvent && c.PaymentMethod.IsOnline() {
		c.PaymentPlan = d.PaymentPlan
	}
	if c.ReservationCode == "" {
		c.ReservationCode = fmt.Sprintf("RES-%d", res.ID)
	}
	return c
}

// buildNotification уведомление о подтверждённом бронировании
func buildNotification(session *domain.BookingSession, c *domain.Confirmation) *notificationservice.ReservationNotification {
	d := session.Draft
	n := &notificationservice.ReservationNotification{
		CustomerName:      c.CustomerName,
		CustomerPhone:     notificationservice.NormalizePhone(c.CustomerPhone),
		CustomerEmail:     c.CustomerEmail,
		ReservationCode:   c.ReservationCode,
		ReservationDate:   c.Date,
		ReservationTime:   d.Schedule.Time.String(),
		GuestCount:        c.Guests,
		SpecialRequests:   d.SpecialRequests,
		PaymentType:       c.PaymentMethod.RemoteName(),
		PaymentStatus:     paymentStatus(c),
		TotalAmount:       c.Total.Float64(),
		ReservationStatus: string(c.Status),
		ReservationType:   session.Variant.ReservationType(),
		ReservationID:     c.ReservationID,
		HasPreOrder:       len(d.MenuItems) > 0,
	}
	if sh := d.Schedule.Shift; sh != nil {
		n.ReservationTime = sh.TimeRange()
		n.TableInfo = sh.Name
	}
	if t := d.Resource.Table; t != nil {
		n.TableInfo = fmt.Sprintf("Mesa %s (%s)", t.Code, t.Location)
	}
	for _, line := range d.MenuItems {
		n.OrderItems = append(n.OrderItems, notificationservice.OrderItem{
			ProductName: line.Item.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Item.Price.Float64(),
			Subtotal:    line.Item.Price.Mul(line.Quantity).Float64(),
		})
	}
	return n
}

func paymentStatus(c *domain.Confirmation) string {
	switch {
	case c.PaymentFailed:
		return "FALLIDO"
	case c.AmountPaid.IsPositive() && c.AmountPaid >= c.Total:
		return "PAGADO"
	case c.AmountPaid.IsPositive():
		return "PARCIAL"
	default:
		return "PENDIENTE"
	}
}
