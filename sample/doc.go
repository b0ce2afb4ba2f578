// Package sample holds hand-written message types in the shape a code
// generator would emit for the protobuf runtime in package message. The
// .proto sources they implement live under testdata/ and are checked
// against these types by the schema package tests.
//
// Every message type comes in two halves: an immutable message value with
// getters, and a builder with chaining setters, ParseFrom and Build.
package sample
