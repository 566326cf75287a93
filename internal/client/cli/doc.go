// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local state store, the GraphQL API client
// and the domain services into an interactive REPL. Typical flow: restore
// the persisted session, bootstrap the profile, then execute user
// commands until exit.
//
// Key features:
//   - Signup / Login / Logout, with email verification flows
//   - Catalog browsing and search
//   - Cart management with bounded quantity stepping
//   - Checkout (buy-now and whole-cart) with order confirmation codes
//   - Order history, tracking, cancellation and returns
//   - An admin console for staff accounts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
