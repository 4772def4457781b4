package karl

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// AnonymousFunction is the sentinel used when the enclosing function of
// a call site cannot be resolved.
const AnonymousFunction = "<anonymous>"

// callSite describes the source location of a logging call: the file
// (split into directory and base name), line and enclosing function of
// the frame that invoked the logging entry point.
type callSite struct {
	FileName string
	FilePath string
	Line     int
	Function string
}

// emptySite substitutes for a real capture when location information is
// disabled. Skipping the runtime lookup roughly quadruples the
// throughput of a logging call.
var emptySite = callSite{}

// workDir is resolved once; call-site paths are reported relative to it.
var workDir = sync.OnceValue(func() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
})

// resolveCallSite captures exactly one stack frame, skip levels above
// its own caller (skip 0 is the caller itself). It never fails hard: if
// the runtime yields no frame the empty record is returned and the
// consumer defaults paper over the gap.
func resolveCallSite(skip int) callSite {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return emptySite
	}
	frame, _ := runtime.CallersFrames(pcs[:1]).Next()
	return siteFromFrame(frame)
}

// siteFromPC resolves a call site from a program counter captured
// elsewhere, such as an slog record's PC.
func siteFromPC(pc uintptr) callSite {
	if pc == 0 {
		return emptySite
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return siteFromFrame(frame)
}

func siteFromFrame(frame runtime.Frame) callSite {
	if frame.Line == 0 || frame.File == "" {
		return emptySite
	}
	file := frame.File
	if wd := workDir(); wd != "" {
		if rel, err := filepath.Rel(wd, file); err == nil {
			file = rel
		}
	}
	dir, base := filepath.Split(file)
	dir = strings.TrimSuffix(dir, string(filepath.Separator))
	if dir == "" {
		dir = "."
	}
	return callSite{
		FileName: base,
		FilePath: dir,
		Line:     frame.Line,
		Function: shortFuncName(frame.Function),
	}
}

// shortFuncName trims the package path from a fully qualified function
// name: "github.com/x/y.(*T).Do" becomes "(*T).Do".
func shortFuncName(fn string) string {
	if fn == "" {
		return AnonymousFunction
	}
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.IndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	if fn == "" {
		return AnonymousFunction
	}
	return fn
}

// apply copies the call site into the event, leaving the documented
// null/sentinel shape behind when the site is empty.
func (c callSite) apply(e *Event) {
	if c.Line == 0 {
		e.FunctionName = AnonymousFunction
		return
	}
	e.FileName = c.FileName
	e.FilePath = c.FilePath
	e.LineNumber = c.Line
	e.FunctionName = c.Function
}
