package vagrantfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/core"
)

func TestConfig_RecordsInOrder(t *testing.T) {
	cfg := NewConfig()
	cfg.SyncedFolder("/one", "/1", nil)
	cfg.Network(core.PrivateNetwork, core.NetworkOptions{"ip": "192.168.10.201"})
	cfg.SyncedFolder("/two", "/2", core.FolderOptions{"type": "nfs"})

	statements := cfg.Statements()
	require.Len(t, statements, 3)
	assert.Equal(t, StatementSyncedFolder, statements[0].Kind)
	assert.Equal(t, StatementNetwork, statements[1].Kind)
	assert.Equal(t, StatementSyncedFolder, statements[2].Kind)

	assert.Equal(t, []core.SyncedFolder{
		{HostPath: "/one", GuestPath: "/1", Options: core.FolderOptions{}},
		{HostPath: "/two", GuestPath: "/2", Options: core.FolderOptions{"type": "nfs"}},
	}, cfg.SyncedFolders())
	assert.Len(t, cfg.Networks(), 1)
}

func TestConfig_Render(t *testing.T) {
	cfg := NewConfig()
	cfg.Box = "bento/centos-7"
	cfg.Network(core.PrivateNetwork, core.NetworkOptions{"ip": "192.168.10.201"})
	cfg.SyncedFolder("/src/gpdb", "/gpdb", core.FolderOptions{
		"type":        "nfs",
		"nfs_version": 4,
		"nfs_udp":     false,
	})
	cfg.SyncedFolder("/data", "/data", nil)
	cfg.Provider(core.ProviderVirtualBox).Name = "gpdb-dev"

	expected := `# -*- mode: ruby -*-
# vi: set ft=ruby :
# Generated by gpdb-vagrant

Vagrant.configure("2") do |config|
  config.vm.box = "bento/centos-7"
  config.vm.network :private_network, ip: "192.168.10.201"
  config.vm.synced_folder "/src/gpdb", "/gpdb", nfs_udp: false, nfs_version: 4, type: "nfs"
  config.vm.synced_folder "/data", "/data"

  config.vm.provider :virtualbox do |vb|
    vb.name = "gpdb-dev"
  end
end
`
	var b strings.Builder
	require.NoError(t, cfg.Render(&b))
	assert.Equal(t, expected, b.String())
	assert.Equal(t, expected, cfg.String())
}

func TestRubyLiteral(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "nil", value: nil, expected: "nil"},
		{name: "string", value: "plain", expected: `"plain"`},
		{name: "quotes and backslash", value: `a"b\c`, expected: `"a\"b\\c"`},
		{name: "interpolation is escaped", value: "#{ENV['HOME']}", expected: `"\#{ENV['HOME']}"`},
		{name: "instance variable interpolation is escaped", value: "/home/#@user", expected: `"/home/\#@user"`},
		{name: "global variable interpolation is escaped", value: "/x/#$HOME", expected: `"/x/\#$HOME"`},
		{name: "newline", value: "a\nb", expected: `"a\nb"`},
		{name: "bool", value: true, expected: "true"},
		{name: "int", value: 4, expected: "4"},
		{name: "float", value: 1.5, expected: "1.5"},
		{name: "list", value: []interface{}{"--verbose", 1}, expected: `["--verbose", 1]`},
		{name: "hash", value: map[string]interface{}{"b": 2, "a": "x"}, expected: `{"a" => "x", "b" => 2}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rubyLiteral(tc.value))
		})
	}
}

func TestRubyKey(t *testing.T) {
	assert.Equal(t, "rsync__args:", rubyKey("rsync__args"))
	assert.Equal(t, `"mount-opts":`, rubyKey("mount-opts"))
}

func TestConfig_WriteFile(t *testing.T) {
	cfg := NewConfig()
	cfg.SyncedFolder("/a", "/b", nil)

	dir := filepath.Join(t.TempDir(), "nested")
	path, err := cfg.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Vagrantfile"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.String(), string(data))
}
