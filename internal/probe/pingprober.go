package probe

import (
	"context"
	"os/exec"
	"strconv"

	"github.com/hamed0406/netwatch/internal/domain"
)

// replyTimeoutSec is the per-request wait passed to ping's -W flag. A
// request with no reply inside this window counts as a loss, not an error.
const replyTimeoutSec = 2

// PingProber shells out to the system ping tool. The binary exits nonzero
// when every request is lost, so the exit status is ignored and only the
// statistics output is consulted.
type PingProber struct {
	// Binary overrides the ping executable path; empty means "ping".
	Binary string
}

func NewPingProber() *PingProber {
	return &PingProber{}
}

func (p *PingProber) Probe(ctx context.Context, target string, count int) domain.ProbeResult {
	if count < 1 {
		count = 1
	}
	bin := p.Binary
	if bin == "" {
		bin = "ping"
	}
	cmd := exec.CommandContext(ctx, bin,
		"-n", "-q",
		"-c", strconv.Itoa(count),
		"-W", strconv.Itoa(replyTimeoutSec),
		target,
	)
	out, _ := cmd.CombinedOutput()
	return ParsePingOutput(string(out))
}
