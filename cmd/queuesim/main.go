// Command queuesim drives a queuemgr.Manager through an interleaved
// multi-queue workload described by a TOML config file, logging every
// lifecycle event as newline-delimited JSON. It exists to exercise the
// region/queuemgr packages the way a host firmware image would, with a
// config file standing in for compiled-in workload parameters.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joeycumines/logiface"

	"github.com/sttelite/queue-manager/queuemgr"
	"github.com/sttelite/queue-manager/region"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML workload file; built-in demo workload if empty")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "queuesim: loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := queuemgr.NewStumpyLogger(os.Stdout, levelFromString(cfg.LogLevel))

	hooks := region.Hooks{
		OnOutOfMemory:      func() { fmt.Fprintln(os.Stderr, "queuesim: out of memory, exiting"); os.Exit(1) },
		OnIllegalOperation: func() { fmt.Fprintln(os.Stderr, "queuesim: illegal operation, exiting"); os.Exit(1) },
	}

	mgr := queuemgr.New(hooks, logger)
	handles := make([]region.Handle, len(cfg.Queues))
	for i := range cfg.Queues {
		handles[i] = mgr.CreateQueue()
	}

	maxLen := 0
	for _, q := range cfg.Queues {
		if len(q.Bytes) > maxLen {
			maxLen = len(q.Bytes)
		}
	}
	for step := 0; step < maxLen; step++ {
		for i, q := range cfg.Queues {
			if step < len(q.Bytes) {
				mgr.Enqueue(handles[i], byte(q.Bytes[step]))
			}
		}
	}

	for i, q := range cfg.Queues {
		for range q.Bytes {
			mgr.Dequeue(handles[i])
		}
		mgr.DestroyQueue(handles[i])
	}

	if stats, problems := mgr.Verify(); len(problems) != 0 {
		fmt.Fprintf(os.Stderr, "queuesim: post-run verify found problems: %v (stats=%+v)\n", problems, stats)
		os.Exit(1)
	}
}

func levelFromString(s string) logiface.Level {
	switch s {
	case "trace":
		return logiface.LevelTrace
	case "info":
		return logiface.LevelInformational
	case "warn", "warning":
		return logiface.LevelWarning
	case "error", "err":
		return logiface.LevelError
	default:
		return logiface.LevelDebug
	}
}
