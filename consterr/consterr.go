// Package consterr lets packages declare sentinel errors as constants.
package consterr

// Error is an error implementation whose values can be declared with the
// const keyword:
//
//	const ErrSomething consterr.Error = "something went wrong"
type Error string

func (err Error) Error() string { return string(err) }
