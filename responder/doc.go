// Package responder houses concrete implementations of the core.Responder
// fallback contract. The interface itself lives in the core package to
// centralize domain contracts; keeping only implementations here lets the
// wiring layer decide which one to instantiate.
//
// The shipped Echo responder is a deliberate stub: hooking up a real model
// backend is a wiring concern, added as another implementation of
// core.Responder without changing any calling code.
package responder
