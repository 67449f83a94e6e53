package misc

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	debugEnabled  bool
	debugInitOnce sync.Once
)

// initDebugFlag reads the DEBUG config once.
func initDebugFlag() {
	debugInitOnce.Do(func() {
		val := strings.TrimSpace(GetConfigValueDefault("misc", "DEBUG", ""))
		debugEnabled = val == "true" || val == "1"
	})
}

// SetDebug overrides the configured debug flag (e.g. from a --verbose flag).
func SetDebug(enabled bool) {
	initDebugFlag()
	debugEnabled = enabled
}

var (
	infoTag    = color.New(color.FgCyan).Sprint("[*]")
	successTag = color.New(color.FgGreen).Sprint("[+]")
	warnTag    = color.New(color.FgYellow).Sprint("[!]")
	errorTag   = color.New(color.FgRed).Sprint("[-]")
)

func emit(tag, mod, msg string) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	return fmt.Sprintf("[%s]%s[%s]: %s", timestamp, tag, mod, msg)
}

func Info(mod string, msg string) {
	fmt.Println(emit(infoTag, mod, msg))
}

func Success(mod string, msg string) {
	fmt.Println(emit(successTag, mod, msg))
}

func Warn(mod string, msg string) {
	fmt.Fprintln(os.Stderr, emit(warnTag, mod, msg))
}

func Error(mod string, msg string) {
	fmt.Fprintln(os.Stderr, emit(errorTag, mod, msg))
}

func Debug(format string, v ...any) {
	initDebugFlag()
	if !debugEnabled {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Printf("[%s][DEBUG]: %s\n", timestamp, fmt.Sprintf(format, v...))
}
