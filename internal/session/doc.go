/*
Package session implements the checkout/cart workflow engine: the session
state record, the step-by-step checkout state machine with its shipping and
payment sub-modes, the form-field editing model, cyclic list navigation, and
read-through catalog loading.

One Session exists per process and is driven by a single-threaded event loop:
an input event is fully processed, including any backend call, before the next
one is accepted. Nothing else mutates the session.
*/
package session
