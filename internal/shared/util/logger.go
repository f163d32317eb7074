package util

import (
	"fmt"
	"log"
	"os"
	"time"
)

var (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

type Logger struct {
	std *log.Logger
}

func New() *Logger {
	return &Logger{
		std: log.New(os.Stdout, "", 0), // we print our own timestamp
	}
}

func (l *Logger) Info(instance, message string) {
	l.printf(green, "INFO", instance, message)
}

func (l *Logger) Warn(instance, message string) {
	l.printf(yellow, "WARN", instance, message)
}

func (l *Logger) Error(instance string, err error) {
	l.printf(red, "ERROR", instance, err.Error())
}

func (l *Logger) OK(instance, message string) {
	l.printf(green, "OK", instance, message)
}

func (l *Logger) Fatal(instance string, err error) {
	l.printf(red, "FATAL", instance, err.Error())
	os.Exit(1)
}

func (l *Logger) printf(color, level, instance, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.std.Printf("%s %s%-5s%s | %-28s | %s", timestamp, color, level, reset, instance, message)
}

// HTTP writes an access-log line for a finished request.
func (l *Logger) HTTP(status int, elapsed time.Duration, host, method, path string) {
	l.std.Printf("|%s| %7s | %-20s | %s %s", paintStatus(status), elapsed, host, paintMethod(method), path)
}

func paintMethod(method string) string {
	color := white
	switch method {
	case "GET":
		color = blue
	case "POST":
		color = green
	case "PUT":
		color = cyan
	case "DELETE":
		color = red
	}
	return color + fmt.Sprintf("%-6s", method) + reset
}

func paintStatus(code int) string {
	color := white
	switch {
	case code >= 200 && code < 300:
		color = green
	case code >= 300 && code < 400:
		color = cyan
	case code >= 400 && code < 500:
		color = yellow
	case code >= 500:
		color = red
	}
	return color + fmt.Sprintf("%d", code) + reset
}
