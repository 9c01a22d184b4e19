package vagrantfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vagrant-mcp/gpdb-vagrant/internal/core"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/errors"
)

const header = `# -*- mode: ruby -*-
# vi: set ft=ruby :
# Generated by gpdb-vagrant
`

// rubyIdent matches keys that can be written as bare keyword arguments
var rubyIdent = regexp.MustCompile(`^[a-z_][a-zA-Z0-9_]*$`)

// providerVars are the block variable names used for provider blocks
var providerVars = map[core.ProviderType]string{
	core.ProviderVirtualBox: "vb",
}

// Render writes the recorded configuration as a Vagrantfile
func (c *Config) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\nVagrant.configure(\"2\") do |config|\n")

	if c.Box != "" {
		fmt.Fprintf(&b, "  config.vm.box = %s\n", rubyLiteral(c.Box))
	}

	for _, s := range c.statements {
		switch s.Kind {
		case StatementNetwork:
			fmt.Fprintf(&b, "  config.vm.network :%s%s\n", s.Network.Kind, keywordArgs(s.Network.Options.Keys(), s.Network.Options))
		case StatementSyncedFolder:
			f := s.Folder
			fmt.Fprintf(&b, "  config.vm.synced_folder %s, %s%s\n",
				rubyLiteral(f.HostPath), rubyLiteral(f.GuestPath), keywordArgs(f.Options.Keys(), f.Options))
		}
	}

	for _, kind := range c.providerKinds() {
		settings := c.providers[kind]
		v, ok := providerVars[kind]
		if !ok {
			v = "p"
		}
		fmt.Fprintf(&b, "\n  config.vm.provider :%s do |%s|\n", kind, v)
		if settings.Name != "" {
			fmt.Fprintf(&b, "    %s.name = %s\n", v, rubyLiteral(settings.Name))
		}
		b.WriteString("  end\n")
	}

	b.WriteString("end\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the configuration, returning an empty string on failure
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// WriteFile renders the configuration to dir/Vagrantfile and returns the path
func (c *Config) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.OperationFailed("create Vagrantfile directory", err)
	}
	path := filepath.Join(dir, "Vagrantfile")
	if err := os.WriteFile(path, []byte(c.String()), 0644); err != nil {
		return "", errors.OperationFailed("write Vagrantfile", err)
	}
	return path, nil
}

func keywordArgs[M ~map[string]interface{}](keys []string, options M) string {
	if len(keys) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", rubyKey(k), rubyLiteral(options[k])))
	}
	return ", " + strings.Join(parts, ", ")
}

func rubyKey(k string) string {
	if rubyIdent.MatchString(k) {
		return k + ":"
	}
	return rubyString(k) + ":"
}

// rubyLiteral formats a decoded YAML value as a Ruby literal
func rubyLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return rubyString(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, rubyLiteral(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []string:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, rubyString(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s => %s", rubyString(k), rubyLiteral(val[k])))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return rubyString(fmt.Sprintf("%v", val))
	}
}

var rubyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"#", `\#`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func rubyString(s string) string {
	return `"` + rubyEscaper.Replace(s) + `"`
}
