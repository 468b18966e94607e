/*
Package domain holds the storefront data model: products, regions, the cart,
shipping and payment drafts, and completed orders/subscriptions.

Values here are plain data. Products and regions are immutable once loaded and
replaced wholesale on reload; the cart and the address/payment drafts are
mutated exclusively by the session that owns them.
*/
package domain
