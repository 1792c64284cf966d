// Package godec provides:
//
//   - An immutable JSON Value with ordered object members and exact number text
//   - A path-carrying Failure error model ("Error at: `$.a[0]`")
//   - Bounded parsing with duplicate-key/depth/size enforcement (ParseOpt)
//   - A pluggable tokenizer SPI (SetJSONDriver; go-json by default)
//
// Design policy:
//   - Keep only the value, failure and parse surfaces in the root package; put
//     the token stream contract under internal/engine and drivers under source/.
//   - Place decoder combinators under decode/, encoders under encode/,
//     reflection-derived coders under auto/, and the CLI under cmd/godec.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := godec.ParseBytes(data, godec.ParseOpt{MaxDepth: 64})
//	user, err := decode.FromString(userDecoder, string(data))
//	s := auto.ToString(2, user)
package godec
