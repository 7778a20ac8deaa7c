package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Maps arbitrary values to random readable names, lazily and memoized for
// the life of the process. Handy for telling hull attempts or pointers
// apart in debug output without staring at addresses. The memo is never
// freed, so keep this on debugging paths.

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in demand order; keeping them nondeterministic
	// is a reminder that a name never survives across runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for obj, minting one on first use. Nil
// values all share the same name.
func Name(obj interface{}) string {
	if obj == nil || isNilValue(obj) {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = name
	return name
}

func isNilValue(obj interface{}) bool {
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
