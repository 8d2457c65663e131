// Package assembly turns a chassis, a bag of parts and optional expansion
// chips into a scored robot configuration.
//
// Every strategy runs the same five stages in order: validate, plan,
// execute, optimize and finalize. Strategies differ only in their Policy,
// which decides the order parts are offered to slots, the step timings and
// how the final rating is weighted. Assemble never returns an error; every
// outcome, including cancellation and recovered panics, is reported in the
// Result.
package assembly
