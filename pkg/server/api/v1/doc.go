// Package apiv1 holds the request and response messages of the catalog.v1 services. Messages are
// exchanged as JSON; optional fields are pointers and omitted when unset.
package apiv1
