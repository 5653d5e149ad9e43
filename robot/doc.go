// Package robot implements the stationary bricklaying robot (component G):
// a fixed-size reach rectangle that, on each tick, either lays whatever
// unbuilt unit it can presently reach and support, or moves its reach
// somewhere new.
package robot
