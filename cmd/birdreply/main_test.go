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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/birdreply/apis"
	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapper.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "8001", "Network", "not", "found")
	require.NoError(t, err)
	for _, line := range []string{
		"code:   8001",
		"kind:   RouteNotFound",
		"band:   runtime_error",
		"reason: runtime.route_not_found",
		"text:   Network not found",
		"http:   404",
		"grpc:   NOT_FOUND(5)",
	} {
		assert.Contains(t, out, line+"\n")
	}
}

func TestClassify_JSON(t *testing.T) {
	out, err := run(t, "classify", "13", "--json")
	require.NoError(t, err)

	var d apis.Descriptor
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, apis.Descriptor{
		Code:       13,
		Kind:       "StatusReport",
		Reason:     "info.status_report",
		Band:       "informational",
		HTTPStatus: 200,
	}, d)
}

func TestClassify_WithConfig(t *testing.T) {
	path := writeConfig(t, "[[override]]\ncode = 8001\nhttp = 410\ngrpc = 5\n")
	out, err := run(t, "--config", path, "classify", "8001")
	require.NoError(t, err)
	assert.Contains(t, out, "http:   410\n")
	assert.NotContains(t, out, "text:")
}

func TestClassify_InvalidCode(t *testing.T) {
	for _, arg := range []string{"abc", "12345", "80.1"} {
		_, err := run(t, "classify", arg)
		assert.ErrorIs(t, err, code.ErrCodeInvalid, arg)
	}
	_, err := run(t, "classify")
	require.Error(t, err)
}

func TestExplain(t *testing.T) {
	out, err := run(t, "explain", "8005")
	require.NoError(t, err)
	assert.Equal(t, `code=8005 band=runtime_error reason="runtime.protocol_down"
http: source=prefix pattern="runtime.protocol_down" -> 503
grpc: source=prefix pattern="runtime.protocol_down" -> UNAVAILABLE(14)
`, out)
}

func TestCheck(t *testing.T) {
	path := writeConfig(t, `
[[default]]
band = "client"
http = 422

[[prefix]]
reason = "runtime.*"
grpc = 14
`)
	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, path+": ok (1 defaults, 0 overrides, 1 prefixes)\n", out)
}

func TestCheck_Invalid(t *testing.T) {
	path := writeConfig(t, "[[prefix]]\nreason = \"*\"\nhttp = 500\n")
	_, err := run(t, "check", path)
	assert.True(t, errors.Is(err, mapper.ErrInvalidConfig), "err = %v", err)

	_, err = run(t, "check", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds", "--band", "client_error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.Contains(t, lines[1], "CommandTooLong")
	assert.Contains(t, lines[4], "9003+")

	_, err = run(t, "kinds", "--band", "nope")
	assert.ErrorIs(t, err, code.ErrBandInvalid)
}

func TestLogLevel_Invalid(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--log-level", "loud", "kinds"})
	require.Error(t, cmd.Execute())
}
