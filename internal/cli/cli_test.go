package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestLessonsJSON(t *testing.T) {
	var lessons []model.Lesson
	require.NoError(t, json.Unmarshal([]byte(run(t, "lessons", "--json")), &lessons))

	require.Len(t, lessons, 32)
	assert.Equal(t, "basics", lessons[0].Slug)
	assert.Equal(t, "/basics", lessons[0].Prefix)
}

func TestLessonsText(t *testing.T) {
	out := run(t, "lessons")
	assert.Contains(t, out, "/path-params")
	assert.Contains(t, out, "Path Parameters")
}

func TestRoutesPrefix(t *testing.T) {
	out := run(t, "routes", "--prefix", "/path-params")

	assert.Contains(t, out, "/path-params/items/:item_id")
	assert.NotContains(t, out, "/query-params")
	assert.NotContains(t, out, "echo_route_not_found")
}

func TestRoutesAll(t *testing.T) {
	out := run(t, "routes")

	assert.Contains(t, out, "/status")
	assert.Contains(t, out, "/docs")
	assert.Contains(t, out, "/body-updates/details/:id")
}
