// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package logger builds the process-wide zap logger. Events go to stdout
// (console encoding in development, JSON otherwise) and, when a file is
// configured, to a JSON log rotated by lumberjack.
package logger

import (
	"fmt"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	Level       string // debug, info, warn, error
	File        string // optional rotated JSON log file
	Development bool

	// Output replaces stdout; used by tests.
	Output zapcore.WriteSyncer
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// New returns a logger built from opts and installs it as the global
// logger via zap.ReplaceGlobals.
func New(opts Options) (*zap.Logger, error) {
	level := zap.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stdout)
	}

	encCfg := encoderConfig()
	var stdoutEnc zapcore.Encoder
	if opts.Development {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.LowercaseColorLevelEncoder
		stdoutEnc = zapcore.NewConsoleEncoder(consoleCfg)
	} else {
		stdoutEnc = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{zapcore.NewCore(stdoutEnc, out, level)}
	errOut := out

	if opts.File != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, level))
		errOut = fileSink
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.ErrorOutput(errOut),
	)
	zap.ReplaceGlobals(z)
	return z, nil
}
