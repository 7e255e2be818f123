// Package planner decides what a student should do next.
//
// SelectNextAction evaluates an ordered decision table against a DailyContext
// and returns the action of the first rule whose predicate matches. The table
// always ends in a rule that matches, so selection never fails. GeneratePlan
// wraps the chosen action with tone-aware messaging.
//
// Everything in this package is pure: no I/O, no clocks, no shared state.
package planner
