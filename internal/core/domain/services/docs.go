// Package services contains stateless domain services that implement
// cross-aggregate business logic.
//
// The package currently provides the AssignmentMatcher, which ranks ready
// orders for a delivery partner by pickup proximity. The matcher is pure
// computation over domain objects: persistence and transport concerns stay
// in the application and adapter layers.
package services
