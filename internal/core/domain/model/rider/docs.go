// Package rider provides the Rider aggregate: a courier who either collects
// parcels from customers or delivers them from the hub. A rider's home zone
// drives the exact-match zone check used when binding delivery riders.
package rider
