// Package errs provides the error taxonomy shared by all blobls packages.
//
// Two kinds matter to the listing flow:
//
//   - ConfigurationMissing: fatal, raised while loading settings, aborts the run.
//   - PageFetchFailed: scoped to one enumeration; it ends that enumeration and is
//     reported on the diagnostic channel, but never aborts the run.
//
// # Usage
//
//	if err := creds.Validate(); errs.IsConfigurationMissing(err) {
//	    return err
//	}
package errs
