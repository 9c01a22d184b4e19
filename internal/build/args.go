// Package build assembles the configure flags used to build GPDB inside the VMs
package build

// baseArgs is copied on every call so callers never share the backing array
var baseArgs = [...]string{
	"--enable-debug",
	"--with-python",
	"--with-perl",
	"--with-libxml",
}

const (
	// DisableORCA turns off the GPORCA optimizer
	DisableORCA = "--disable-orca"
	// LDLibraryPath lets configure find the GPORCA libraries under /usr/local/lib.
	// It is an environment assignment, not a flag.
	LDLibraryPath = "LD_LIBRARY_PATH=/usr/local/lib:$LD_LIBRARY_PATH"
)

// GPDBArgs returns the configure arguments for a GPDB build
func GPDBArgs(withGPORCA bool) []string {
	args := make([]string, 0, len(baseArgs)+1)
	args = append(args, baseArgs[:]...)
	if !withGPORCA {
		return append(args, DisableORCA)
	}
	return append(args, LDLibraryPath)
}

// DefaultGPDBArgs returns the arguments for a build with GPORCA enabled
func DefaultGPDBArgs() []string {
	return GPDBArgs(true)
}
