// Package user provides the registered-customer aggregate. Registration
// data (email, name, phone) is validated on construction; password
// strength is checked by the registration use case and credentials are
// never stored in this aggregate.
package user
