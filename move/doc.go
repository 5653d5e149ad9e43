// Package move implements the four move strategies (component F): given the
// wall's lowest non-complete course, decide which unbuilt unit the robot
// should aim its next reach rectangle at.
package move
