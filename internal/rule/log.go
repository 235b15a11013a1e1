package rule

import "github.com/grindlemire/scrollsnap/internal/debug"

func logEvalError(engine Engine, src string, err error) {
	debug.Log("rule: %s %q failed: %v", engine, src, err)
}
