/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

var benchRoots = []string{"info", "table", "header", "runtime", "client", "unknown"}

// genSegment returns a random segment matching [a-z][a-z0-9_]*.
func genSegment(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.WriteByte(byte('a' + rng.Intn(26)))
	for i := 1; i < n; i++ {
		switch rng.Intn(3) {
		case 0:
			b.WriteByte(byte('a' + rng.Intn(26)))
		case 1:
			b.WriteByte(byte('0' + rng.Intn(10)))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// buildTrie inserts n reason prefixes of the given depth and returns keys
// that extend each prefix by one segment.
func buildTrie(b *testing.B, n, depth int, wildcard bool) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		segs := []string{benchRoots[i%len(benchRoots)]}
		for j := 1; j < depth; j++ {
			segs = append(segs, genSegment(rng, 3+rng.Intn(8)))
		}
		key := strings.Join(segs, ".") + "." + genSegment(rng, 5)
		if wildcard && depth > 1 {
			segs[1] = Wildcard
		}
		if err := tr.Insert(strings.Join(segs, "."), i); err != nil {
			b.Fatalf("insert: %v", err)
		}
		keys = append(keys, key)
	}
	return tr, keys
}

func BenchmarkMatch(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		for _, depth := range []int{2, 4} {
			for _, wc := range []bool{false, true} {
				b.Run(fmt.Sprintf("n=%d/depth=%d/wildcard=%v", n, depth, wc), func(b *testing.B) {
					tr, keys := buildTrie(b, n, depth, wc)
					b.ReportAllocs()
					b.ResetTimer()
					var sink int
					for i := 0; i < b.N; i++ {
						if v, ok := tr.Match(keys[i%len(keys)]); ok {
							sink += v
						}
					}
					_ = sink
				})
			}
		}
	}
}

func BenchmarkMatchParallel(b *testing.B) {
	tr, keys := buildTrie(b, 1024, 3, false)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = tr.Match(keys[i%len(keys)])
			i++
		}
	})
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	prefixes := make([]string, 1024)
	for i := range prefixes {
		prefixes[i] = benchRoots[i%len(benchRoots)] + "." + genSegment(rng, 8)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New[int]()
		for j, p := range prefixes {
			_ = tr.Insert(p, j)
		}
	}
}
