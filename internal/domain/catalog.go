package domain

import "fmt"

// CustomOrderServiceID catalog entry for fully custom creations priced by the boutique
const CustomOrderServiceID = "custom-order"

// Service a stitching service offered by the boutique
type Service struct {
	ID              string
	Name            string
	Category        string
	BasePrice       int64
	RequiresAdvance bool // fabric or lining is sourced by the boutique
}

// CatalogAddOn optional paid extra
type CatalogAddOn struct {
	ID    string
	Name  string
	Price int64
}

var services = []Service{
	{ID: "simple-salwar", Name: "Simple Salwar Suit", Category: "simple", BasePrice: 700},
	{ID: "simple-pant-suit", Name: "Simple Pant Suit", Category: "simple", BasePrice: 800},
	{ID: "simple-blouse", Name: "Simple Blouse", Category: "simple", BasePrice: 500},
	{ID: "simple-pant", Name: "Simple Pant", Category: "simple", BasePrice: 400},
	{ID: "lining-salwar", Name: "Lining Salwar Suit", Category: "lining", BasePrice: 1300, RequiresAdvance: true},
	{ID: "lining-pant-suit", Name: "Lining Pant Suit", Category: "lining", BasePrice: 1600, RequiresAdvance: true},
	{ID: "lining-blouse", Name: "Lining Blouse", Category: "lining", BasePrice: 800, RequiresAdvance: true},
	{ID: "padded-blouse", Name: "Padded Blouse", Category: "premium-ethnic", BasePrice: 1500, RequiresAdvance: true},
	{ID: "princess-blouse", Name: "Princess Cut Blouse", Category: "premium-ethnic", BasePrice: 1200},
	{ID: "anarkali", Name: "Anarkali & Sharara", Category: "premium-ethnic", BasePrice: 2500, RequiresAdvance: true},
	{ID: "coord-set", Name: "Co-ord Set", Category: "premium-ethnic", BasePrice: 1800, RequiresAdvance: true},
	{ID: "sabyasachi-blouse", Name: "Sabyasachi Styled Blouse", Category: "premium-ethnic", BasePrice: 2500, RequiresAdvance: true},
	{ID: "bridal-blouse", Name: "Bridal Blouse", Category: "bridal", BasePrice: 2100, RequiresAdvance: true},
	{ID: "bridal-padded-suit", Name: "Bridal Padded Suit", Category: "bridal", BasePrice: 2100, RequiresAdvance: true},
	{ID: "jumpsuit", Name: "Jump Suit", Category: "western", BasePrice: 1600, RequiresAdvance: true},
	{ID: "gown", Name: "Gown", Category: "western", BasePrice: 2500, RequiresAdvance: true},
	{ID: "fish-cut-lehenga", Name: "Fish Cut Lehenga", Category: "western", BasePrice: 2500, RequiresAdvance: true},
	{ID: CustomOrderServiceID, Name: "Custom Creation", Category: "others", BasePrice: 0, RequiresAdvance: true},
}

var addOns = []CatalogAddOn{
	{ID: "piping", Name: "Piping", Price: 100},
	{ID: "tassels", Name: "Tassels", Price: 200},
}

// Services returns a copy of the service catalog
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// AddOns returns a copy of the add-on catalog
func AddOns() []CatalogAddOn {
	out := make([]CatalogAddOn, len(addOns))
	copy(out, addOns)
	return out
}

// FindService looks a service up by id
func FindService(id string) (Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
}

// FindAddOn looks an add-on up by id
func FindAddOn(id string) (CatalogAddOn, error) {
	for _, a := range addOns {
		if a.ID == id {
			return a, nil
		}
	}
	return CatalogAddOn{}, fmt.Errorf("%w: %q", ErrAddOnNotFound, id)
}

// ResolvedSelection catalog data needed to price an order
type ResolvedSelection struct {
	Service Service
	AddOns  []AddOn
}

// ResolveSelection resolves the service behind sel and the add-on ids against the catalog
func ResolveSelection(sel Selection, addOnIDs []string) (*ResolvedSelection, error) {
	var serviceID string
	switch s := sel.(type) {
	case CatalogSelection:
		serviceID = s.ServiceID
	case CustomSelection:
		serviceID = s.BaseServiceID
	default:
		return nil, fmt.Errorf("%w: service selection is required", ErrInvalidOrder)
	}

	service, err := FindService(serviceID)
	if err != nil {
		return nil, err
	}

	if len(addOnIDs) > MaxAddOnsPerOrder {
		return nil, fmt.Errorf("%w: at most %d add-ons per order", ErrInvalidOrder, MaxAddOnsPerOrder)
	}

	resolved := make([]AddOn, 0, len(addOnIDs))
	for _, id := range addOnIDs {
		a, err := FindAddOn(id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, AddOn{Name: a.Name, Price: a.Price})
	}

	return &ResolvedSelection{Service: service, AddOns: resolved}, nil
}
