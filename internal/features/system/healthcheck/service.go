package system_healthcheck

import (
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`

	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	MemoryTotalMB     uint64  `json:"memoryTotalMb"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
	DiskFreeGB        float64 `json:"diskFreeGb"`
}

func (s *HealthcheckService) GetHealthStatus() *HealthStatus {
	status := &HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		status.MemoryUsedPercent = vm.UsedPercent
		status.MemoryTotalMB = vm.Total / 1024 / 1024
	}

	if usage, err := disk.Usage("/"); err == nil {
		status.DiskUsedPercent = usage.UsedPercent
		status.DiskFreeGB = float64(usage.Free) / 1024 / 1024 / 1024
	}

	return status
}
