// Package calendar holds the pure scheduling logic behind the planning
// calendar: interval membership, Gantt bar geometry, grouping by action type,
// planned/unplanned/rescheduled classification, view navigation, and popover
// placement. Nothing here renders or performs I/O.
package calendar
