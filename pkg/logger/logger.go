package logger

import (
	"log"
	"os"
)

var (
	// InfoLogger bilgi mesajları için
	InfoLogger *log.Logger

	// ErrorLogger hata mesajları için
	ErrorLogger *log.Logger
)

// Init loggerları hazırlar
func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
