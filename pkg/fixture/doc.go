// Package fixture checks example JSON documents against a schema.
//
// Fixtures live in two flat directories. Every "*.json" file in the valid
// directory must conform to the schema, and every "*.json" file in the
// invalid directory must not. [Walk] classifies each fixture against that
// expectation and [Failures] counts the mismatches.
package fixture
