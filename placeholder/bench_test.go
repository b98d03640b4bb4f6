package placeholder

import "testing"

// BenchmarkResolver_NoToken measures the fast path for values without
// placeholders.
func BenchmarkResolver_NoToken(b *testing.B) {
	r, _ := NewResolver(mapSource{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("plain value with no tokens at all")
	}
}

// BenchmarkResolver_SingleToken measures one direct reference.
func BenchmarkResolver_SingleToken(b *testing.B) {
	r, _ := NewResolver(mapSource{"key": "value"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("${key}")
	}
}

// BenchmarkResolver_Transitive measures a three-hop chain.
func BenchmarkResolver_Transitive(b *testing.B) {
	r, _ := NewResolver(mapSource{
		"a": "${b}",
		"b": "${c}",
		"c": "value",
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("${a}")
	}
}

// BenchmarkParse measures tokenization of a mixed value.
func BenchmarkParse(b *testing.B) {
	raw := "host=${h} port=${p?8080} url=${u?${scheme?https}://${h}}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parse(raw)
	}
}
