package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for pointers, so that triangles in log output and debug
// drawings can be told apart at a glance. Names are handed out lazily and are
// never forgotten, which pins every named object in memory. Only call Name on
// debugging paths.

var (
	memoLock sync.Mutex
	memo     = map[interface{}]string{}
)

// Names are random per run so nobody mistakes them for stable identifiers.
func init() {
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		if value.IsNil() {
			return "Ø"
		}
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
