package app

import (
	"github.com/vk/sweepgridgo/internal/registry"
	"github.com/vk/sweepgridgo/modules/maxproduct"
	"github.com/vk/sweepgridgo/modules/uniqueruns"
)

// coreModules is the definitive list of all scan modules that are compiled
// into the sweepgridgo binary.
var coreModules = []registry.Module{
	&maxproduct.Module{},
	&uniqueruns.Module{},
}
