// Package driver runs a robot against a wall until neither laying a brick
// nor moving makes further progress, and reports on the session (component
// H). Sweep reimplements the reference planner's "try every strategy
// combination" sweep as a first-class, testable operation.
package driver
