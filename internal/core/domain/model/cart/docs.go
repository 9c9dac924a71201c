// Package cart implements the shopping cart aggregate.
//
// A cart belongs to one customer and, once non-empty, to one restaurant:
// items from different restaurants never mix. Adding a dish from another
// restaurant fails with a RestaurantMismatchError carrying both restaurant
// identities, so callers can ask the customer to confirm the switch and
// retry with the replace option, which clears the cart first.
//
// Cart lines are identified by the (dish, variant label) pair: adding the
// same pair again merges quantities into the existing line instead of
// creating a duplicate. Line unit prices are snapshotted from the catalog
// at add time, variant modifier included.
package cart
