// Package params compares the processing parameters of a reloaded artifact with
// the snapshot taken when it was first reviewed.
//
// The checks are pure: they never touch storage. When a record has no snapshot
// yet, the check fills one in on the record and the caller decides whether to
// persist it.
package params
