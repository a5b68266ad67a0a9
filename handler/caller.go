package handler

import (
	"path/filepath"
	"runtime"

	"github.com/philipp01105/apptemplate/core"
)

func callerFromPC(pc uintptr) core.CallerInfo {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return core.CallerInfo{}
	}
	return core.CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
