// Package errors provides the structured error type used across robot-forge.
//
// Errors carry a Code, a user-facing message, an optional cause and
// free-form metadata:
//
//	err := errors.InvalidArgumentf("unknown part category: %s", category).
//	    WithMeta("part_id", id)
//
// Wrapping keeps the code of the wrapped error so callers can still branch
// on it after context has been added:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store assembly result")
//	}
//
//	if errors.IsAborted(err) {
//	    // another assembly for the same robot is in flight
//	}
//
// Construction code collects field problems with a ValidationBuilder and
// returns a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("id", rec.ID, vb)
//	errors.ValidateRange("upgrade_level", rec.UpgradeLevel, 0, maxLevel, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Repositories return NotFound/AlreadyExists, orchestrators return
// InvalidArgument/FailedPrecondition/Aborted, and the CLI maps the final
// code to an exit status with Code.ExitCode.
package errors
