// Package provider defines the configuration source capability and its
// composition into one logical key space.
//
// A Provider is one upstream source of raw key/value data with lookup,
// key enumeration, and change notification. Aggregate combines an ordered
// chain of providers with last-wins override precedence and atomic
// snapshot replacement on reload. MapProvider is the in-memory reference
// implementation.
package provider
