// Package jsonschema4 implements a JSON Schema Draft-4 validator: a $ref
// resolver that ingests schema documents from files, URLs or embedded
// resources in JSON or YAML, and a recursive validator that dispatches on
// schema keywords and reports path-addressed errors.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema4
