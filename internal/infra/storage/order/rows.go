package order

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// JSONB column payloads

type addOnJSON struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type customizationJSON struct {
	NeckDesign  string `json:"neckDesign,omitempty"`
	SleeveStyle string `json:"sleeveStyle,omitempty"`
	Fit         string `json:"fit,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
}

// orderRow flat representation of one orders row
type orderRow struct {
	ID                int64
	OrderID           string
	CustomerName      string
	Phone             string
	Address           string
	ServiceType       string
	ServiceID         string
	ServiceName       string
	Customization     []byte
	AddOns            []byte
	BookingType       string
	MeasurementMethod string
	Measurements      []byte
	TailorVisitDate   sql.NullTime
	ProcessingStart   time.Time
	EstimatedDelivery time.Time
	SlotDate          string
	BasePrice         int64
	AddOnsTotal       int64
	UrgentSurcharge   int64
	TotalAmount       int64
	AdvanceAmount     int64
	BalanceAmount     int64
	RequiresAdvance   bool
	PaymentStatus     string
	Status            string
	StatusHistory     []byte
	Notes             sql.NullString
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// selectColumns column order shared by every SELECT and RETURNING clause
var selectColumns = []string{
	"id",
	"order_id",
	"customer_name",
	"phone",
	"address",
	"service_type",
	"service_id",
	"service_name",
	"customization",
	"add_ons",
	"booking_type",
	"measurement_method",
	"measurements",
	"tailor_visit_date",
	"processing_start_date",
	"estimated_delivery",
	"to_char(slot_date, 'YYYY-MM-DD')",
	"base_price",
	"add_ons_total",
	"urgent_surcharge",
	"total_amount",
	"advance_amount",
	"balance_amount",
	"requires_advance",
	"payment_status",
	"status",
	"status_history",
	"notes",
	"created_at",
	"updated_at",
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRow(s scanner) (*orderRow, error) {
	var row orderRow
	err := s.Scan(
		&row.ID,
		&row.OrderID,
		&row.CustomerName,
		&row.Phone,
		&row.Address,
		&row.ServiceType,
		&row.ServiceID,
		&row.ServiceName,
		&row.Customization,
		&row.AddOns,
		&row.BookingType,
		&row.MeasurementMethod,
		&row.Measurements,
		&row.TailorVisitDate,
		&row.ProcessingStart,
		&row.EstimatedDelivery,
		&row.SlotDate,
		&row.BasePrice,
		&row.AddOnsTotal,
		&row.UrgentSurcharge,
		&row.TotalAmount,
		&row.AdvanceAmount,
		&row.BalanceAmount,
		&row.RequiresAdvance,
		&row.PaymentStatus,
		&row.Status,
		&row.StatusHistory,
		&row.Notes,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// toRow flattens the order variants into columns
func toRow(o *domain.Order) (*orderRow, error) {
	row := &orderRow{
		ID:                o.ID,
		OrderID:           o.OrderID,
		CustomerName:      o.Customer.Name,
		Phone:             o.Customer.Phone,
		Address:           o.Customer.Address,
		ServiceType:       string(o.ServiceType()),
		ServiceName:       o.ServiceName,
		BookingType:       string(o.BookingType),
		MeasurementMethod: string(o.MeasurementMethod()),
		ProcessingStart:   o.ProcessingStartDate,
		EstimatedDelivery: o.EstimatedDelivery,
		SlotDate:          domain.DateKey(o.SlotDate),
		BasePrice:         o.Pricing.BasePrice,
		AddOnsTotal:       o.Pricing.AddOnsTotal,
		UrgentSurcharge:   o.Pricing.UrgentSurcharge,
		TotalAmount:       o.Pricing.Total,
		AdvanceAmount:     o.Pricing.AdvanceAmount,
		BalanceAmount:     o.Pricing.BalanceAmount,
		RequiresAdvance:   o.Pricing.RequiresAdvance,
		PaymentStatus:     string(o.PaymentStatus),
		Status:            string(o.Status),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.Notes != nil {
		row.Notes = sql.NullString{String: *o.Notes, Valid: true}
	}

	var customization customizationJSON
	switch s := o.Selection.(type) {
	case domain.CatalogSelection:
		row.ServiceID = s.ServiceID
	case domain.CustomSelection:
		row.ServiceID = s.BaseServiceID
		customization = customizationJSON{
			NeckDesign:  s.Customization.NeckDesign,
			SleeveStyle: s.Customization.SleeveStyle,
			Fit:         s.Customization.Fit,
			Remarks:     s.Customization.Remarks,
		}
	}

	measurements := map[string]string{}
	switch m := o.Measurement.(type) {
	case domain.SelfMeasurement:
		if m.Values != nil {
			measurements = m.Values
		}
	case domain.TailorVisit:
		row.TailorVisitDate = sql.NullTime{Time: m.VisitDate, Valid: true}
	}

	addOns := make([]addOnJSON, 0, len(o.AddOns))
	for _, a := range o.AddOns {
		addOns = append(addOns, addOnJSON{Name: a.Name, Price: a.Price})
	}

	var err error
	if row.Customization, err = json.Marshal(customization); err != nil {
		return nil, fmt.Errorf("%w: customization: %v", ErrEncode, err)
	}
	if row.AddOns, err = json.Marshal(addOns); err != nil {
		return nil, fmt.Errorf("%w: add_ons: %v", ErrEncode, err)
	}
	if row.Measurements, err = json.Marshal(measurements); err != nil {
		return nil, fmt.Errorf("%w: measurements: %v", ErrEncode, err)
	}
	if row.StatusHistory, err = json.Marshal(historyOrEmpty(o.StatusHistory)); err != nil {
		return nil, fmt.Errorf("%w: status_history: %v", ErrEncode, err)
	}

	return row, nil
}

// toDomain rebuilds the order variants from columns
func (row *orderRow) toDomain() (*domain.Order, error) {
	o := &domain.Order{
		ID:      row.ID,
		OrderID: row.OrderID,
		Customer: domain.Customer{
			Name:    row.CustomerName,
			Phone:   row.Phone,
			Address: row.Address,
		},
		ServiceName:         row.ServiceName,
		BookingType:         domain.BookingType(row.BookingType),
		ProcessingStartDate: row.ProcessingStart,
		EstimatedDelivery:   row.EstimatedDelivery,
		Pricing: domain.PricingResult{
			BasePrice:       row.BasePrice,
			AddOnsTotal:     row.AddOnsTotal,
			UrgentSurcharge: row.UrgentSurcharge,
			Total:           row.TotalAmount,
			AdvanceAmount:   row.AdvanceAmount,
			BalanceAmount:   row.BalanceAmount,
			RequiresAdvance: row.RequiresAdvance,
		},
		PaymentStatus: domain.PaymentStatus(row.PaymentStatus),
		Status:        domain.OrderStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	slotDate, err := time.Parse(domain.DateFormat, row.SlotDate)
	if err != nil {
		return nil, fmt.Errorf("%w: slot_date %q: %v", ErrEncode, row.SlotDate, err)
	}
	o.SlotDate = slotDate

	if row.Notes.Valid {
		notes := row.Notes.String
		o.Notes = &notes
	}

	if domain.ServiceType(row.ServiceType) == domain.ServiceTypeCustom {
		var c customizationJSON
		if err := unmarshalColumn(row.Customization, &c); err != nil {
			return nil, fmt.Errorf("%w: customization: %v", ErrEncode, err)
		}
		o.Selection = domain.CustomSelection{
			BaseServiceID: row.ServiceID,
			Customization: domain.Customization{
				NeckDesign:  c.NeckDesign,
				SleeveStyle: c.SleeveStyle,
				Fit:         c.Fit,
				Remarks:     c.Remarks,
			},
		}
	} else {
		o.Selection = domain.CatalogSelection{ServiceID: row.ServiceID}
	}

	if domain.MeasurementMethod(row.MeasurementMethod) == domain.MeasurementTailor && row.TailorVisitDate.Valid {
		o.Measurement = domain.TailorVisit{VisitDate: row.TailorVisitDate.Time}
	} else {
		values := map[string]string{}
		if err := unmarshalColumn(row.Measurements, &values); err != nil {
			return nil, fmt.Errorf("%w: measurements: %v", ErrEncode, err)
		}
		o.Measurement = domain.SelfMeasurement{Values: values}
	}

	var addOns []addOnJSON
	if err := unmarshalColumn(row.AddOns, &addOns); err != nil {
		return nil, fmt.Errorf("%w: add_ons: %v", ErrEncode, err)
	}
	o.AddOns = make([]domain.AddOn, 0, len(addOns))
	for _, a := range addOns {
		o.AddOns = append(o.AddOns, domain.AddOn{Name: a.Name, Price: a.Price})
	}

	if err := unmarshalColumn(row.StatusHistory, &o.StatusHistory); err != nil {
		return nil, fmt.Errorf("%w: status_history: %v", ErrEncode, err)
	}

	return o, nil
}

func unmarshalColumn(data []byte, dst interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

func historyOrEmpty(h []domain.StatusChange) []domain.StatusChange {
	if h == nil {
		return []domain.StatusChange{}
	}
	return h
}
