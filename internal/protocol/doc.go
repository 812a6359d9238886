// Package protocol synthesizes the Redgear A-15's proprietary feature-report
// transactions.
//
// The device is configured by replaying a fixed 48-frame transaction (8
// bytes per frame) in which a handful of frames carry the configurable
// state. Each logical setting encodes to one or more frame-indexed patches;
// Compose applies them over the factory template in the fixed order the
// firmware expects and returns the final transaction for the transport
// layer to send.
//
// Everything in this package is pure: the template is process-wide constant
// data, patch application always returns a new sequence, and encoding is
// total over the closed setting domains. The one cross-setting interaction —
// enabling continuous fire silently disables the repeat-count field — is
// part of ContinuousFire's encoding rather than an ordering side effect.
package protocol
