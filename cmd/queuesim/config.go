package main

import "github.com/BurntSushi/toml"

// Config describes a demo workload for queuesim: a handful of independent
// queues, each fed a fixed byte sequence, interleaved the way scenario S4
// of the allocator's test suite interleaves two queues.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Queues   []QueueConfig `toml:"queue"`
}

// QueueConfig is one simulated queue's workload.
type QueueConfig struct {
	Name  string `toml:"name"`
	Bytes []int  `toml:"bytes"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

func defaultConfig() Config {
	return Config{
		LogLevel: "debug",
		Queues: []QueueConfig{
			{Name: "alpha", Bytes: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
			{Name: "beta", Bytes: []int{100, 101, 102, 103, 104}},
		},
	}
}
