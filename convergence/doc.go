// SPDX-License-Identifier: MIT

// Package convergence drives bounded iterative approximation.
//
// A method supplies a StepFunc that performs iteration i and reports it as a
// Step. Run calls it for i = 0, 1, … and stops at the first of:
//
//   - a step error: the loop ends immediately, the failing step is not
//     recorded, and the error is returned with Converged = false;
//   - convergence: the recorded step has Error < tol, or FX == 0 exactly;
//   - the iteration cap: Converged = false with no error.
//
// The returned Outcome always holds every recorded step in order, so callers
// can render the full trace even for failed or capped runs.
//
// Clamp normalises user-supplied caps into [1, ceiling].
package convergence
