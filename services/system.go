package services

import (
	"fmt"

	"github.com/mrnavastar/magma/util"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	minMemoryMB = 1024
	maxMemoryMB = 32000
)

func SystemRAM() (util.RamInfo, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return util.RamInfo{}, fmt.Errorf("failed to read memory info: %w", err)
	}
	return RamInfoFromBytes(vm.Total, vm.Free), nil
}

// RamInfoFromBytes suggests at most 80% of total memory for the game.
func RamInfoFromBytes(total, free uint64) util.RamInfo {
	totalMB := total / 1024 / 1024
	recommended := totalMB * 8 / 10
	return util.RamInfo{
		Total:          totalMB,
		Free:           free / 1024 / 1024,
		RecommendedMax: recommended,
		Min:            minMemoryMB,
		Max:            min(recommended, maxMemoryMB),
	}
}
