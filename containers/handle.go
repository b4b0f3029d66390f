package containers

// Handle is an opaque native window handle supplied by the platform
// facade. The container tree never interprets it; it is only ever
// passed back through [platform] calls.
type Handle uintptr
