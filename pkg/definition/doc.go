// Package definition loads declarative stylesheet definitions and builds
// them into a css.Collection.
//
// Three formats decode into the same Sheet model:
//
//   - YAML (.yaml, .yml): mappings keep their document order, so
//     declarations and property sets can be written as plain maps.
//   - TOML (.toml): order-sensitive data is written as arrays of tables.
//   - XML (.xml): <stylesheet> holding <set> and <rule> elements.
//
// A Sheet holds named property sets and a list of rules. Rules may apply sets,
// extend an earlier rule by id (deep copy), and nest child rules. Build
// resolves all references in document order.
package definition
