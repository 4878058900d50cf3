package versioneer

import "testing"

func BenchmarkParse(b *testing.B) {
	inputs := []string{"1.2.3", "1.0.0-alpha.1", "1.0.0-rc.1+build.5114f85", "10.20.30-x.7.z.92"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(inputs[i%len(inputs)])
	}
}

func BenchmarkCompareBase(b *testing.B) {
	v1, v2 := MustParse("1.2.3"), MustParse("1.2.4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkComparePrerelease(b *testing.B) {
	v1, v2 := MustParse("1.0.0-beta.2"), MustParse("1.0.0-beta.11")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkString(b *testing.B) {
	v := MustParse("1.0.0-rc.1+build.5114f85")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}
