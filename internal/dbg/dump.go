package dbg

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Deep dump of a value for test failure messages and verbose logging.
func Dump(obj interface{}) string {
	return dumpConfig.Sdump(obj)
}
