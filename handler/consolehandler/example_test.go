package consolehandler_test

import (
	"os"
	"time"

	"github.com/philipp01105/apptemplate/core"
	"github.com/philipp01105/apptemplate/formatter"
	"github.com/philipp01105/apptemplate/handler/consolehandler"
)

// Write plain text lines to stdout, dropping anything below Info.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Formatter: formatter.NewConsoleFormatter(formatter.ConsoleConfig{
			Writer:  os.Stdout,
			NoColor: true,
		}),
		Level: core.InfoLevel,
	})
	defer h.Close()

	for _, lvl := range []core.Level{core.DebugLevel, core.InfoLevel} {
		entry := core.GetEntry()
		entry.Time = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
		entry.Level = lvl
		entry.Logger = "app"
		entry.Message = "ready"
		_ = h.Handle(entry)
		core.PutEntry(entry)
	}
	// Output:
	// 2026-01-15 12:00:00.000 [INFO    ] app: ready
}
