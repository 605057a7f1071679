// Package encode serializes ir trees back to script text.
//
// Serialization re-emits each scalar's verbatim source token, so a
// tree that no merge touched round-trips through Encode and parse
// unchanged in values, order, and operators.
package encode
