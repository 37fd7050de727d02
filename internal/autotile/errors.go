package autotile

import "fmt"

// TreeFetchError means the tree snapshot could not be obtained.
type TreeFetchError struct {
	Err error
}

func (e *TreeFetchError) Error() string {
	return fmt.Sprintf("fetching tree: %v", e.Err)
}

func (e *TreeFetchError) Unwrap() error { return e.Err }

// ResolutionError means the focused node or its parent is missing from the
// snapshot.
type ResolutionError struct {
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving focus: %v", e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// DispatchError means the layout command was rejected or could not be sent.
type DispatchError struct {
	Command string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatching %q: %v", e.Command, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
