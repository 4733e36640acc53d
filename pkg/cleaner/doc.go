// Package cleaner reapplies reviewed quality-control decisions to reprocessed
// artifacts and records new ones.
//
// Decisions live in one log file per directory (see core.Store). Reject merges
// stored decisions into a freshly loaded artifact, Update records the decisions
// taken during a review, and IsCleaned tells whether an artifact was reviewed.
//
// Per kind:
//
//   - raws: bad channels are unioned with the ones already set on the artifact.
//   - epochs: bad channels are unioned, and segments absent from the recorded
//     selection are dropped with reason "Inspection".
//   - icas: the excluded components are replaced by the recorded ones.
//
// A record is written once per artifact name and never revised afterwards.
package cleaner
