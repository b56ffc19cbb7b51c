package tixml

// TI's rwaccess vocabulary is closed. An unlisted token means either a new
// valid mode or a corrupt file, and defaulting would mask the latter, so
// lookups fail loudly instead of guessing.
var tiAccess = map[string]Access{
	"RO": AccessReadOnly,
	"WO": AccessWriteOnly,
	"RW": AccessReadWrite,
}

func parseAccess(v string) (Access, bool) {
	if v == "" {
		return AccessUnspecified, true
	}
	a, ok := tiAccess[v]
	return a, ok
}
