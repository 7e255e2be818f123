// Package domain holds the planner's value objects (subjects, assignments,
// daily contexts, plans, confusion dumps) and the user-owned records stored
// around them. Nothing here performs I/O.
package domain
