// Package errors provides the structured error type shared by every layer of
// pack-odds.
//
// Every error carries a Code, a human readable Message, an optional Cause and
// free-form metadata. Codes map one to one onto the failure classes of the
// tool:
//   - ConfigNotFound: a catalog, offering rate or collection file is missing
//   - ConfigParse: a data file is malformed (bad TOML/CSV, wrong field types)
//   - UnknownRarity: a rarity literal outside the closed enumeration
//   - UnresolvedOfferingTable: an expansion names a table that was not loaded
//   - EmptyCardPool: the calculator was handed no cards
//   - InvalidArgument, NotFound, Unavailable, Internal: everything else
//
// # Basic Usage
//
//	err := errors.ConfigNotFoundf(path, "cards file for %s not found", expansion)
//	err := errors.UnknownRarity("?", entities.RarityLiterals())
//
// Wrapping keeps the wrapped error's code:
//
//	if err := repo.ListExpansions(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load catalog")
//	}
//
// # Error Checking
//
//	if errors.IsUnknownRarity(err) {
//	    literal := errors.GetMeta(err)["literal"]
//	}
//
// The CLI maps the code of the first error to a process exit status with
// Code.ExitCode. Nothing in the tool recovers locally; the first error stops
// the run.
package errors
