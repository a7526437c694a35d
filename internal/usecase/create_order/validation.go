package create_order

import (
	"fmt"
	"strings"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/scheduling"
)

// validateRequest checks the request shape before anything is looked up
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(strings.TrimSpace(req.CustomerName)) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName longer than %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	switch req.ServiceType {
	case domain.ServiceTypeBooking, domain.ServiceTypeCustom:
	default:
		return fmt.Errorf("%w: serviceType must be booking or custom", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if len(req.AddOnIDs) > domain.MaxAddOnsPerOrder {
		return fmt.Errorf("%w: at most %d add-ons per order", ErrInvalidInput, domain.MaxAddOnsPerOrder)
	}

	if !req.BookingType.IsValid() {
		return fmt.Errorf("%w: bookingType must be normal or urgent", ErrInvalidInput)
	}

	switch req.MeasurementMethod {
	case domain.MeasurementSelf:
	case domain.MeasurementTailor:
		if req.TailorVisitDate == nil || req.TailorVisitDate.IsZero() {
			return fmt.Errorf("%w: tailorVisitDate is required for tailor measurement", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: measurementMethod must be self or tailor", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// buildSelection maps the flat request onto the selection variant
func buildSelection(req *Request) domain.Selection {
	if req.ServiceType == domain.ServiceTypeCustom {
		sel := domain.CustomSelection{BaseServiceID: req.ServiceID}
		if req.Customization != nil {
			sel.Customization = *req.Customization
		}
		return sel
	}
	return domain.CatalogSelection{ServiceID: req.ServiceID}
}

// buildMeasurement maps the flat request onto the measurement variant.
// The visit date is normalized to a calendar day in loc.
func buildMeasurement(req *Request, loc *time.Location) domain.Measurement {
	if req.MeasurementMethod == domain.MeasurementTailor {
		return domain.TailorVisit{VisitDate: scheduling.DateIn(*req.TailorVisitDate, loc)}
	}
	values := req.Measurements
	if values == nil {
		values = map[string]string{}
	}
	return domain.SelfMeasurement{Values: values}
}

// validateVisitDate a home visit cannot be booked for a day that has already passed
func validateVisitDate(visit, now time.Time) error {
	if visit.Before(scheduling.StartOfDay(now)) {
		return fmt.Errorf("%w: tailorVisitDate %s is in the past", ErrInvalidDate, visit.Format(domain.DateFormat))
	}
	return nil
}
