package collector

import (
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/avelys/disktop/model"
)

// UsageCollector lists mounted filesystems with size/free figures.
type UsageCollector struct{}

func (c *UsageCollector) Name() string { return "usage" }

func (c *UsageCollector) Collect(snap *model.Snapshot) error {
	parts, err := disk.Partitions(false)
	if err != nil {
		return err
	}

	seen := make(map[string]bool) // deduplicate bind mounts by device
	var devices []model.DiskDevice
	for _, p := range parts {
		if seen[p.Device] {
			continue
		}
		seen[p.Device] = true

		u, err := disk.Usage(p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		avail := u.Free
		if avail > u.Total {
			avail = u.Total
		}
		devices = append(devices, model.DiskDevice{
			Name:           p.Device,
			MountPoint:     p.Mountpoint,
			FileSystem:     p.Fstype,
			SizeBytes:      u.Total,
			AvailableBytes: avail,
		})
	}
	snap.Disks = devices
	return nil
}
