// Package diagnostic provides structured errors and warnings for machine
// configurations.
//
// Key capabilities:
//   - Coded errors naming the offending component and setting
//   - Warnings for unusual but workable settings
//   - "did you mean" suggestions for unknown component names
package diagnostic
