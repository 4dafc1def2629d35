// Package scope holds reusable gorm scopes for orderings that are
// fixed by the repository rather than chosen by the caller.
package scope

import "gorm.io/gorm"

func OrderByNameAsc(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
