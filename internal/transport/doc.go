// Package transport replays composed frame transactions to the mouse over
// the HID feature-report channel.
//
// The loop is strictly sequential: one frame in flight at a time, a fixed
// settling delay between each write and its diagnostic read-back, no
// retries. Write failures are local to their frame and do not abort the
// transaction; the Result distinguishes a clean run from one completed with
// warnings. There is no rollback — the mouse is a stateful peripheral and
// frames it already accepted remain applied, so the recovery story for a
// partial transaction is simply to re-run the command.
package transport
