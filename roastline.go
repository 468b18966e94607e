/*
Package roastline is a coffee storefront that runs entirely in the terminal:
browse a catalog, build a cart, and walk a shipping → payment → confirmation
checkout against a remote store.

The workflow engine lives in internal/session; pkg/domain and pkg/ports hold
the data model and the driven-port contracts so backends and caches stay
swappable without touching the checkout logic.
*/
package roastline

// Version is the release version, stamped by the build.
var Version = "0.3.0"
