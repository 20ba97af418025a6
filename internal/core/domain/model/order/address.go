package order

// Address is the shipping destination of an order. It is a plain value
// object with structural equality and no behavior; field validation is the
// concern of the layer that accepts the address.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// IsEqual reports structural equality of two addresses.
func (a Address) IsEqual(other Address) bool {
	return a == other
}
