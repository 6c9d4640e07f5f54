package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-pin/internal/config"
)

type envKey struct{}

// env keeps everything the program needs in a single place.
type env struct {
	Cfg *config.Config
	Log *zap.Logger

	start         time.Time
	restoreStdLog func()
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	panic("env not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &env{start: time.Now(), Log: zap.NewNop()})
}

func (e *env) uptime() time.Duration {
	return time.Since(e.start)
}

func (e *env) redirectStdLog() {
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *env) restoreLog() {
	_ = e.Log.Sync()
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
