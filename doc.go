// Package buildplanner plans masonry bond layout and schedules a
// stationary bricklaying robot's build order across a synthesised wall.
//
// 🧱 What is buildplanner?
//
//	A small, dependency-light planning core that brings together:
//
//	  • Geometry primitives: axis-aligned rectangles, overlap and
//	    containment queries, slicing.
//	  • Wall synthesis: courses of bricks and head joints, built course by
//	    course from a pluggable masonry bond.
//	  • Robot scheduling: alignment and move strategies that decide where a
//	    fixed-size reach rectangle goes next, and a driver loop that lays
//	    brick after brick until the wall is complete.
//
// Everything is organized under subpackages:
//
//	geometry/ — Point, Rectangle and their overlap/containment/slice queries
//	wall/     — Unit, Course, Wall and the Bond interface, plus CreateWall
//	bond/     — the stretcher, cross, flemish and wild masonry bonds
//	align/    — left/right/center/random alignment strategies
//	move/     — left-to-right/outside-in/snake/dynamic-snake move strategies
//	robot/    — the Robot type: LayBrick, Move, and its reach rectangle
//	driver/   — the lay/move termination loop and the strategy-sweep report
//	dispatch/ — name-to-constructor tables for bonds/moves/alignments
//	cmd/buildplanner/ — a thin CLI wiring the dispatch tables to the driver
package buildplanner
