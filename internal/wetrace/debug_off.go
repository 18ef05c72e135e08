//go:build !debug
// +build !debug

package wetrace

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
