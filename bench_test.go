package godec_test

import (
	"testing"

	godec "github.com/godec-io/godec"
)

func smallUserJSON() []byte {
	return []byte(`{"name":"Alice","age":30,"tags":["a","b"],"active":true}`)
}

func nestedJSON() []byte {
	return []byte(`{"a":{"b":{"c":[1,2,3,{"d":"x"}]}},"e":[{"f":1},{"f":2}]}`)
}

func Benchmark_ParseBytes_Small(b *testing.B) {
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := godec.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ParseBytes_Nested(b *testing.B) {
	data := nestedJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := godec.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ParseBytes_WithEnforcement(b *testing.B) {
	data := nestedJSON()
	opt := godec.ParseOpt{MaxDepth: 64, OnDuplicateKey: godec.DupError}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := godec.ParseBytes(data, opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ParseBytes_StdlibDriver(b *testing.B) {
	godec.UseStdlibJSONDriver()
	defer godec.UseDefaultJSONDriver()
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := godec.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Render_Compact(b *testing.B) {
	v, err := godec.ParseBytes(nestedJSON())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Render(0)
	}
}
