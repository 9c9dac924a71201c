// Package catalog holds the menu-side domain model: dishes and their
// variants. A dish belongs to exactly one restaurant and carries a base
// price; variants adjust that price with a signed modifier. The catalog is
// read-mostly: carts and checkout consume dish prices, they never change
// them.
package catalog
