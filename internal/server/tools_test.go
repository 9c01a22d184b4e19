package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/config"
)

// extractTextContent extracts the first text content from a slice of Content (any type)
func extractTextContent(contents interface{}) string {
	b, err := json.Marshal(contents)
	if err != nil {
		return ""
	}
	var arr []map[string]interface{}
	if err := json.Unmarshal(b, &arr); err != nil {
		return ""
	}
	for _, m := range arr {
		if t, ok := m["type"].(string); ok && t == "text" {
			if txt, ok := m["text"].(string); ok {
				return txt
			}
		}
	}
	return ""
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, params map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: params,
		},
	}
	resp, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

func TestBuildArgsTool(t *testing.T) {
	tool := buildArgsTool()
	assert.Equal(t, "gpdb_build_args", tool.Name)
}

func TestHandleBuildArgs(t *testing.T) {
	testCases := []struct {
		name     string
		params   map[string]interface{}
		expected string
	}{
		{
			name:     "default",
			params:   map[string]interface{}{},
			expected: "--enable-debug\n--with-python\n--with-perl\n--with-libxml\nLD_LIBRARY_PATH=/usr/local/lib:$LD_LIBRARY_PATH",
		},
		{
			name:     "without gporca",
			params:   map[string]interface{}{"with_gporca": false},
			expected: "--enable-debug\n--with-python\n--with-perl\n--with-libxml\n--disable-orca",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := callTool(t, handleBuildArgs(config.Default()), "gpdb_build_args", tc.params)
			assert.False(t, resp.IsError)
			assert.Equal(t, tc.expected, extractTextContent(resp.Content))
		})
	}
}

func TestHandleRenderVagrantfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vagrant-local.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
synced_folder:
  - local: /src
    shared: /gpdb
    type: nfs
`), 0644))

	resp := callTool(t, handleRenderVagrantfile(config.Default()), "render_vagrantfile", map[string]interface{}{
		"name":       "gpdb-dev",
		"local_file": path,
		"box":        "bento/centos-7",
	})
	require.False(t, resp.IsError, extractTextContent(resp.Content))

	text := extractTextContent(resp.Content)
	assert.Contains(t, text, `config.vm.network :private_network, ip: "192.168.10.201"`)
	assert.Contains(t, text, `config.vm.synced_folder "/src", "/gpdb", type: "nfs"`)
	assert.Contains(t, text, `vb.name = "gpdb-dev"`)
	assert.Contains(t, text, `config.vm.box = "bento/centos-7"`)
}

func TestHandleRenderVagrantfile_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vagrant-local.yml")
	require.NoError(t, os.WriteFile(path, []byte("synced_folder: [broken"), 0644))

	resp := callTool(t, handleRenderVagrantfile(config.Default()), "render_vagrantfile", map[string]interface{}{
		"local_file": path,
	})
	assert.True(t, resp.IsError)
	assert.Contains(t, extractTextContent(resp.Content), "failed to parse")
}

func TestNewServer(t *testing.T) {
	srv := NewServer(config.Default())
	assert.NotNil(t, srv.MCPServer())
}
