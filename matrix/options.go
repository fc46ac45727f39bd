// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, the single place where setters are resolved.
//
// Notes:
//   - validateNaNInf controls whether Dense.Set rejects NaN/±Inf. It is on by
//     default; finite-difference callers that want raw propagation of
//     non-finite stencils turn it off per matrix, never globally.
//   - Tolerances are explicit arguments of the kernels that need one
//     (ValidateSymmetric, Eigen, AllClose), not part of the policy.
package matrix

// DefaultValidateNaNInf toggles finite-only validation in Dense.Set.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables finite-only writes (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf be stored verbatim.
// Use it when non-finite values must propagate to the caller untouched.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies setters in order (last-writer-wins) on top of the
// documented defaults. It is the only place defaults are materialized.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
