// Package ast holds the tree produced by the parser.
//
// Node is a closed sum type: only the variants declared here implement it.
// Ownership is strictly parent→children; nodes keep no back-references.
package ast
