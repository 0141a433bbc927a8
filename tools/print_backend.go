//go:build ignore

// This tool prints which mutex backend the current build configuration
// selects.
//
// Run with:
//
//	go run tools/print_backend.go
//	go run -tags mutex_critsec tools/print_backend.go
//	GOOS=windows go build -o /dev/null tools/print_backend.go
package main

import (
	"fmt"

	"github.com/kolkov/mutexcap/mutex"
)

func main() {
	info := mutex.GetInfo()
	fmt.Printf("mutexcap %s\n", info.Version)
	fmt.Printf("Backend:     %s\n", info.Backend)
	fmt.Printf("Static init: %v\n", info.StaticInit)
	if info.StaticInit {
		fmt.Println("Handles are usable before mutex.Initialize.")
	} else {
		fmt.Println("Handles must be initialized with mutex.Initialize or Mutex.Init.")
	}
}
