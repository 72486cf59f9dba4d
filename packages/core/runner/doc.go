// Package runner turns resolved profiles into cargo invocations and
// source-file coverage plans.
package runner
