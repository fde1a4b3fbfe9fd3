package netlink

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hamed0406/netwatch/internal/domain"
)

// Inspector reads interface state and routing information from the kernel's
// procfs/sysfs views. Roots are overridable so parsers can be exercised
// against fixture trees.
type Inspector struct {
	SysRoot  string // default /sys
	ProcRoot string // default /proc
}

func NewInspector() *Inspector {
	return &Inspector{SysRoot: "/sys", ProcRoot: "/proc"}
}

// LinkState reports the interface's operational state. A missing interface
// or an unreadable indicator degrades to LinkUnknown, never an error.
func (i *Inspector) LinkState(name string) domain.LinkState {
	p := filepath.Join(i.SysRoot, "class", "net", name, "operstate")
	b, err := os.ReadFile(p)
	if err != nil {
		return domain.LinkUnknown
	}
	return ParseOperState(string(b))
}

// ParseOperState maps a sysfs operstate value to a LinkState. The kernel
// reports more states than we care about (dormant, testing, notpresent);
// anything that is not plainly up or down is unknown.
func ParseOperState(raw string) domain.LinkState {
	switch strings.TrimSpace(raw) {
	case "up":
		return domain.LinkUp
	case "down":
		return domain.LinkDown
	default:
		return domain.LinkUnknown
	}
}
