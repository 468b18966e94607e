/*
Package ports defines the driven ports (interfaces) for the storefront session.

These interfaces decouple the checkout workflow from external implementations,
allowing the session to work with different remote stores and cache backends.

# Key Interfaces

  - Backend: the remote data store (products, regions, addresses, orders).
  - Cache: a TTL key/value store shielding loads from backend latency.
  - Clock: injectable time source, used by caches and tests.
*/
package ports
