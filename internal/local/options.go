package local

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/core"
)

// OptionName is a synced_folder option Vagrant understands
type OptionName string

// Recognized synced_folder options
const (
	OptionType         OptionName = "type"
	OptionCreate       OptionName = "create"
	OptionDisabled     OptionName = "disabled"
	OptionID           OptionName = "id"
	OptionOwner        OptionName = "owner"
	OptionGroup        OptionName = "group"
	OptionMountOptions OptionName = "mount_options"
	OptionNFSUDP       OptionName = "nfs_udp"
	OptionNFSVersion   OptionName = "nfs_version"
	OptionNFSExport    OptionName = "nfs_export"
	OptionRsyncArgs    OptionName = "rsync__args"
	OptionRsyncExclude OptionName = "rsync__exclude"
	OptionRsyncAuto    OptionName = "rsync__auto"
	OptionSMBUsername  OptionName = "smb_username"
	OptionSMBPassword  OptionName = "smb_password"
	OptionSMBHost      OptionName = "smb_host"
)

// Record keys consumed by the loader itself rather than passed as options
const (
	keyFolder = "folder"
	keyLocal  = "local"
	keyShared = "shared"
)

// boolOptions take true/false; string spellings such as "no" are converted
var boolOptions = map[OptionName]bool{
	OptionCreate:    true,
	OptionDisabled:  true,
	OptionNFSUDP:    true,
	OptionRsyncAuto: true,
}

// OptionMapper turns the extra keys of a folder record into named options
type OptionMapper struct {
	known map[string]OptionName
}

// NewOptionMapper creates a mapper that knows the standard Vagrant options
func NewOptionMapper() *OptionMapper {
	m := &OptionMapper{known: make(map[string]OptionName)}
	for _, name := range []OptionName{
		OptionType, OptionCreate, OptionDisabled, OptionID, OptionOwner,
		OptionGroup, OptionMountOptions, OptionNFSUDP, OptionNFSVersion,
		OptionNFSExport, OptionRsyncArgs, OptionRsyncExclude, OptionRsyncAuto,
		OptionSMBUsername, OptionSMBPassword, OptionSMBHost,
	} {
		m.known[string(name)] = name
	}
	return m
}

// Lookup reports the option name for a record key
func (m *OptionMapper) Lookup(key string) (OptionName, bool) {
	name, ok := m.known[key]
	return name, ok
}

// Map builds the option set for a record. folder, local and shared are
// dropped. Unrecognized keys are kept verbatim. Boolean options given as
// strings are converted when the string spells a boolean.
func (m *OptionMapper) Map(logger zerolog.Logger, record FolderRecord) core.FolderOptions {
	options := core.FolderOptions{}
	for key, value := range record {
		switch key {
		case keyFolder, keyLocal, keyShared:
			continue
		}
		if name, ok := m.Lookup(key); ok {
			if boolOptions[name] {
				value = toBool(value)
			}
			options[string(name)] = value
			continue
		}
		logger.Debug().Str("option", key).Msg("Passing through unrecognized synced folder option")
		options[key] = value
	}
	return options
}

// toBool converts YAML 1.1 and strconv spellings of a boolean. Anything
// else is returned unchanged.
func toBool(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if b, ok := yaml11Bools[s]; ok {
		return b
	}
	if b, err := cast.ToBoolE(s); err == nil {
		return b
	}
	return value
}

// DefaultOptionMapper is the mapper used by Process
var DefaultOptionMapper = NewOptionMapper()
