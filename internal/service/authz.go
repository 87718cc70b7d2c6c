package service

import "github.com/and161185/notekeeper/internal/errs"

// AuthorizeOwner is the single ownership check used for every note read,
// update, delete, and translate. Pure: no I/O, no side effects.
func AuthorizeOwner(ownerID, requesterID int64) error {
	if ownerID != requesterID {
		return errs.ErrForbidden
	}
	return nil
}
