package domain

import "strings"

// MethodCapabilities are the special behaviours attached to a payment method.
type MethodCapabilities struct {
	// MailDeferred methods send their confirmation mail at order creation.
	MailDeferred bool
	// CashChannel methods may create a shipment as soon as they are authorized.
	CashChannel bool
	// ShipmentScope is the configuration scope holding the create_shipment toggle.
	ShipmentScope string
}

// MethodCapabilityTable maps lower-case payment method identifiers to
// capabilities. Configuration keys arrive lower-cased from viper.
type MethodCapabilityTable map[string]MethodCapabilities

// Lookup returns the capabilities of method, ignoring case; unknown methods
// have none.
func (t MethodCapabilityTable) Lookup(method string) MethodCapabilities {
	if t == nil {
		return MethodCapabilities{}
	}
	return t[strings.ToLower(strings.TrimSpace(method))]
}
