// Package dialects builds the configuration fragments for each file dialect.
//
// Every builder returns a compose.Producer. When run, it resolves the rule
// providers it needs, copies their baseline rules, applies the fixed policy
// table, merges the stylistic block when one is given, and finally merges
// the caller's overrides. Only rules can be overridden. Builders never
// validate rule values, and provider resolution errors are returned as-is.
package dialects
