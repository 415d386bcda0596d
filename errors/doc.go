/*
Package errors provides semantic error types for the multitype library.

Two families of failure exist:

Configuration faults are returned. The only one raised by dispatch is
HandlerNotFoundError, returned when an item's runtime type has neither an exact
nor an ancestor binding:

	code, err := adapter.ResolveDispatchCode(pos, item)
	if errors.IsHandlerNotFound(err) {
	    // configuration bug: register the type before rendering
	}

Programming faults signal misuse of the API contract (binding index out of range,
one-to-many builder used out of order, selector returning a foreign handler). They
are panicked with a typed error value that matches ErrProgramming:

	defer func() {
	    if r := recover(); errors.IsProgramming(r) { ... }
	}()

Item sources add ErrUnknownEntity, ErrDecode, ErrNotFound and ErrInvalidInput.
All typed errors implement Is, so they keep matching after fmt.Errorf("%w") wrapping.
*/
package errors
