package model

// Package model defines domain data structures used across the app: batch and
// item status enums, per-URL item records, progress counters and the final
// summary of a run. Values are plain structs so the UI can copy them freely.
