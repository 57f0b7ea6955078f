/*
Package errors provides semantic error types for the contactstore library.

Registry lookups and datastore operations report failures with typed errors
that match a small set of sentinels through errors.Is:

	var (
	    ErrNotFound         = errors.New("not found")
	    ErrAlreadyExists    = errors.New("already exists")
	    ErrInvalidInput     = errors.New("invalid input")
	    ErrPermissionDenied = errors.New("permission denied")
	)

Usage:

	ok, err := reg.Delete(ctx, id, "personal")
	if err != nil {
	    switch {
	    case errors.IsNotFound(err):
	        // no address book registered under "personal"
	    case errors.IsPermissionDenied(err):
	        // the address book does not allow deletes
	    default:
	        return err // provider failure, passed through unchanged
	    }
	}

The error types implement the error interface and survive wrapping with
fmt.Errorf("...: %w", err).
*/
package errors
