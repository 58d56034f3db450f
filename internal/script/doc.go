// Package script reads flow files and compiles them onto a queue runner.
//
// A flow file is YAML:
//
//	name: demo
//	seed: start
//	steps:
//	  - log: hello
//	  - ts: {}
//	  - set: 42
//	  - print: {}
//	  - sleep: 250ms
//	  - repeat: {times: 3, steps: [{log: tick}]}
//
// Every step is a mapping with exactly one key naming its kind.
package script
