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

package mapper

import (
	"strings"
	"unicode"

	"google.golang.org/grpc/codes"
)

// clone copies src into a fresh map, converting values with conv, so the
// snapshot never aliases builder state.
func clone[K comparable, V, W any](src map[K]V, conv func(V) W) map[K]W {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]W, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func identity(v int) int { return v }

func toGRPC(v int) codes.Code { return codes.Code(v) }

// GRPCName renders c in the canonical gRPC upper snake form, e.g.
// "NOT_FOUND" for codes.NotFound.
func GRPCName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(s[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
