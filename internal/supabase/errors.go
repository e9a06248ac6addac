package supabase

import "errors"

// ErrNotFound is returned when a row lookup matches nothing the caller may
// see. Handlers map it to 404.
var ErrNotFound = errors.New("not found")
