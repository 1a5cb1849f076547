// Package harness is the measure-and-report convention shared by every
// benchmark program.
//
//   - Invocation carries argv, the environment and the clock.
//   - Stopwatch brackets the kernel with two monotonic readings.
//   - Result holds what a run observed; Render turns it into the single
//     output line (TASK=<name>,N=<size>,TIME_NS=<ns>[,KEY=value]*).
//
// Programs never print; the shell calls Emit exactly once per invocation.
package harness
