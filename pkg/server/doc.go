// Package server provides the per-test mock server: a bound TCP listener,
// an accept loop that hands each connection to the connection package,
// and the registration entry points a mock-builder façade sits on top of.
package server
