package devserver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// MinimumNodeVersion is the Node.js range current Vite releases run on.
const MinimumNodeVersion = ">= 18.0.0"

var nodeRunners = []string{"node", "npm", "npx", "pnpm", "yarn"}

// UsesNode reports whether argv is launched through the Node.js toolchain.
func UsesNode(argv []string) bool {
	return len(argv) > 0 && lo.Contains(nodeRunners, argv[0])
}

// CheckNode runs `node --version` and verifies it satisfies MinimumNodeVersion.
func CheckNode(ctx context.Context) (*semver.Version, error) {
	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run node: %w", err)
	}
	return CheckVersion(string(out), MinimumNodeVersion)
}

// CheckVersion parses raw (e.g. "v20.11.1\n") and checks it against constraint.
func CheckVersion(raw, constraint string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", strings.TrimSpace(raw), err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	if !c.Check(v) {
		return v, fmt.Errorf("node %s does not satisfy %s", v, constraint)
	}
	return v, nil
}
