package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo describes the machine for diagnostics
type HostInfo struct {
	OS            string
	Arch          string
	Distribution  string
	Family        string
	Version       string
	KernelVersion string
}

// DescribeHost reports the running OS and architecture plus whatever
// distribution details gopsutil can find. Detection failures leave the
// optional fields empty; only cancellation is an error.
func DescribeHost(ctx context.Context) (*HostInfo, error) {
	info := &HostInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	platform, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("host detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}
	info.Distribution = platform
	info.Family = family
	info.Version = version

	if kernel, err := host.KernelVersionWithContext(ctx); err == nil {
		info.KernelVersion = kernel
	}

	return info, nil
}
