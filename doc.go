// Package eegcleaner keeps the manual cleaning decisions taken on EEG
// recordings next to the data, so a later session can replay them.
//
// Every reviewed directory holds one JSON log (eeg_cleaner.json) with three
// sections:
//
//   - raws: bad channels per continuous recording
//   - epochs: bad channels, the retained segments and the epoching parameters
//   - icas: excluded components and the decomposition parameters
//
// Update records what the reviewer decided. Reject applies those decisions
// to a freshly loaded artifact and refuses when the epoching or ICA
// parameters differ from the ones stored with the record. IsCleaned tells
// whether an artifact was reviewed at all.
//
// Usage:
//
//	raw := &eegcleaner.Raw{Filename: "subj01/rest-raw.fif", Bads: []string{"EEG 053"}}
//	if err := eegcleaner.UpdateLog(ctx, "subj01", raw); err != nil {
//		return err
//	}
//
//	// next session
//	reloaded := &eegcleaner.Raw{Filename: "subj01/rest-raw.fif"}
//	err := eegcleaner.Reject(ctx, "subj01", reloaded, true)
//
// Logs are stamped with the reviewer's version tag, taken from
// `git describe --always` unless WithVersion is given.
package eegcleaner
