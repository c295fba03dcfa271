// Package types defines the entity records, the Entity contract, link rows,
// configuration, and the standard errors shared by every extents package.
//
// Entities keep their fields unexported. Constructors run every validating
// setter and return no entity when one fails, so an invalid record is never
// observable. Entities do not reference each other; associations live in
// internal/association and are owned by the store.
package types
