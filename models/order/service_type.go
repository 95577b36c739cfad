package order

import "strings"

// ServiceType identifies which order-like entity a record belongs to.
// The reservation number prefix is the wire form of this type.
type ServiceType string

const (
	ServiceMarketResearch ServiceType = "market_research"
	ServiceSampling       ServiceType = "sampling"
	ServiceFactoryContact ServiceType = "factory_contact"
	ServiceInspection     ServiceType = "inspection"
	ServiceBulkOrder      ServiceType = "bulk_order"
)

var servicePrefixes = map[ServiceType]string{
	ServiceMarketResearch: "MR",
	ServiceSampling:       "SA",
	ServiceFactoryContact: "FC",
	ServiceInspection:     "IN",
	ServiceBulkOrder:      "BO",
}

var serviceTables = map[ServiceType]string{
	ServiceMarketResearch: "market_research_requests",
	ServiceSampling:       "sampling_applications",
	ServiceFactoryContact: "factory_contact_requests",
	ServiceInspection:     "inspection_applications",
	ServiceBulkOrder:      "bulk_orders",
}

func (st ServiceType) String() string {
	return string(st)
}

// Table returns the database table backing this service type
func (st ServiceType) Table() string {
	return serviceTables[st]
}

func (st ServiceType) IsValid() bool {
	_, ok := servicePrefixes[st]
	return ok
}

// Prefix returns the reservation number prefix for this service type
func (st ServiceType) Prefix() string {
	return servicePrefixes[st]
}

// ServiceTypeFromReservation resolves the service type from a reservation
// number prefix. Returns false when the prefix is unknown.
func ServiceTypeFromReservation(reservationNumber string) (ServiceType, bool) {
	prefix, _, found := strings.Cut(reservationNumber, "-")
	if !found {
		return "", false
	}
	for st, p := range servicePrefixes {
		if p == prefix {
			return st, true
		}
	}
	return "", false
}
