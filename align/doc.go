// Package align implements the four alignment strategies (component E):
// given a target unit the robot wants to reach next, derive the reach
// rectangle's new bottom-left corner.
package align
