// Package providers models the third-party packages rules come from: core
// rules, plugins, parsers and global tables. Each package publishes named
// baseline configurations that the dialect builders start from.
//
// The built-in registry is populated from the YAML documents under
// baselines/ at init time. A Resolver hands packages to the builders; the
// ProbedResolver additionally requires the package to be installed in the
// project, mirroring what the host engine would load.
package providers
