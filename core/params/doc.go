// core/params/doc.go

// Package params models the flat, named parameter sets exchanged with the
// minimizer: each physical quantity of each velocity component becomes one
// uniquely named scalar carrying an optional uncertainty and the vary/expr
// metadata that constrains it. It never imports cli, output, or app code;
// keep it domain-only.
package params
