package core

import (
	"log"
	"os"
	"strings"
)

type logLevel int

const (
	logSilent logLevel = iota
	logError
	logInfo
	logDebug
)

// Per defecte nomes errors; el parseig en massa amb debug actiu es molt
// sorollos.
var currentLevel = logError

// SetLogLevel configura el nivell de log de la llibreria. L'aplicacio que
// la fa servir decideix el nivell des de la seva propia configuracio.
func SetLogLevel(levelStr string) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "silent", "error", "":
		currentLevel = logError
	case "info":
		currentLevel = logInfo
	case "debug":
		currentLevel = logDebug
	default:
		currentLevel = logInfo
	}
}

func Debugf(format string, v ...interface{}) {
	if currentLevel >= logDebug {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if currentLevel >= logInfo {
		log.Printf("[INFO] "+format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if currentLevel >= logError {
		log.Printf("[ERROR] "+format, v...)
	}
}

// AttachLoggerOutput permet redirigir la sortida de log si cal.
func AttachLoggerOutput(file *os.File) {
	log.SetOutput(file)
}
