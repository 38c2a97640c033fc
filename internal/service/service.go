// Package service defines the lifecycle contract shared by long-running
// components started from main.
package service

import (
	"context"
	"sync"
)

// Service is started once by main. Start must not block: the service runs on
// its own goroutine, stops when serviceStopCtx is cancelled and calls
// serviceStopWG.Done exactly once when it has fully stopped.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
